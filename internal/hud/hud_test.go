package hud

import (
	"testing"

	"pong/internal/match"
)

func TestOverlay_Phases(t *testing.T) {
	tests := []struct {
		name  string
		snap  match.Snapshot
		texts []string
	}{
		{
			name:  "not started",
			snap:  match.Snapshot{Phase: match.NotStarted},
			texts: []string{"0   0", "Press Space to Start"},
		},
		{
			name:  "playing",
			snap:  match.Snapshot{Phase: match.Playing, Score: [2]int{3, 1}},
			texts: []string{"3   1"},
		},
		{
			name:  "game over",
			snap:  match.Snapshot{Phase: match.GameOver, Score: [2]int{2, 5}, Winner: match.Player2},
			texts: []string{"2   5", "Player 2 Wins!", "Press Space to Try Again"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Overlay(tt.snap, "Space")
			if len(lines) != len(tt.texts) {
				t.Fatalf("got %d lines, want %d: %+v", len(lines), len(tt.texts), lines)
			}
			for i, l := range lines {
				if l.S != tt.texts[i] {
					t.Errorf("line %d = %q, want %q", i, l.S, tt.texts[i])
				}
				if l.CenterX != match.Width/2 {
					t.Errorf("line %d not centered: %v", i, l.CenterX)
				}
			}
		})
	}
}

func TestOverlay_GameOverPlacement(t *testing.T) {
	lines := Overlay(match.Snapshot{Phase: match.GameOver, Winner: match.Player1}, "Enter")

	if lines[0].Anchor != Top || lines[0].Y != 30 {
		t.Errorf("score line = %+v", lines[0])
	}
	if lines[1].Y != 320 || lines[1].Size != Large {
		t.Errorf("winner line = %+v", lines[1])
	}
	if lines[2].Y != 400 || lines[2].Size != Small || lines[2].S != "Press Enter to Try Again" {
		t.Errorf("prompt line = %+v", lines[2])
	}
}

func TestShowField(t *testing.T) {
	if ShowField(match.NotStarted) || ShowField(match.GameOver) {
		t.Error("field should be hidden outside of play")
	}
	if !ShowField(match.Playing) {
		t.Error("field should be shown while playing")
	}
}

func TestCenterLine(t *testing.T) {
	dashes := CenterLine()
	if len(dashes) != 18 {
		t.Fatalf("got %d dashes, want 18", len(dashes))
	}
	for i, d := range dashes {
		if d.X != 478 || d.W != 4 || d.H != 20 {
			t.Errorf("dash %d = %+v", i, d)
		}
		if d.Y != float64(i*40) {
			t.Errorf("dash %d at y=%v", i, d.Y)
		}
	}
}
