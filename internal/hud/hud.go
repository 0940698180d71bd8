// Package hud lays out the text overlay and center line for a match frame.
// It only computes positions; drawing is left to the renderer.
package hud

import (
	"fmt"

	"pong/internal/match"
)

type Size uint8

const (
	Large Size = iota
	Small
)

// Text is a line of overlay text. CenterX is the horizontal center; Y is the
// top edge when Anchor is Top, the vertical center when it is Middle.
type Text struct {
	S       string
	CenterX float64
	Y       float64
	Size    Size
	Anchor  Anchor
}

type Anchor uint8

const (
	Top Anchor = iota
	Middle
)

const (
	scoreY       = 30
	promptOffset = 40
	dashWidth    = 4
	dashHeight   = 20
	dashStep     = 40
)

// Overlay returns the text lines for snap. confirm is the label of the key
// bound to Confirm, used in the prompts.
func Overlay(snap match.Snapshot, confirm string) []Text {
	cx := float64(match.Width) / 2
	cy := float64(match.Height) / 2

	lines := []Text{{
		S:       fmt.Sprintf("%d   %d", snap.Score[0], snap.Score[1]),
		CenterX: cx,
		Y:       scoreY,
		Size:    Large,
		Anchor:  Top,
	}}

	switch snap.Phase {
	case match.NotStarted:
		lines = append(lines, Text{
			S: fmt.Sprintf("Press %s to Start", confirm), CenterX: cx, Y: cy, Size: Large, Anchor: Middle,
		})
	case match.GameOver:
		lines = append(lines,
			Text{S: fmt.Sprintf("Player %d Wins!", snap.Winner), CenterX: cx, Y: cy - promptOffset, Size: Large, Anchor: Middle},
			Text{S: fmt.Sprintf("Press %s to Try Again", confirm), CenterX: cx, Y: cy + promptOffset, Size: Small, Anchor: Middle},
		)
	}
	return lines
}

// ShowField reports whether paddles, ball and the center line are drawn.
// Outside of play only the score and prompts are shown.
func ShowField(p match.Phase) bool {
	return p == match.Playing
}

// CenterLine returns the dashes of the net.
func CenterLine() []match.Rect {
	x := float64(match.Width)/2 - dashWidth/2
	dashes := make([]match.Rect, 0, match.Height/dashStep+1)
	for y := 0; y < match.Height; y += dashStep {
		dashes = append(dashes, match.Rect{X: x, Y: float64(y), W: dashWidth, H: dashHeight})
	}
	return dashes
}
