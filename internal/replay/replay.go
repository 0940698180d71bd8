// Package replay records the inputs of a session and re-simulates them.
// Since the match is deterministic for a given seed, the seed plus every
// frame's delta and events is enough to reproduce a session exactly.
package replay

import (
	"errors"
	"fmt"

	"pong/internal/match"
)

const (
	Magic   = "PONGRPL"
	Version = 1
)

var ErrBadMagic = errors.New("not a replay file")

type VersionError struct {
	Got uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported replay version %d (want %d)", e.Got, Version)
}

// Frame is one call to match.Tick.
type Frame struct {
	DeltaMs float64       `msgpack:"d"`
	Events  []match.Event `msgpack:"e,omitempty"`
}

type Recording struct {
	Magic     string  `msgpack:"magic"`
	Version   uint8   `msgpack:"version"`
	SessionID string  `msgpack:"session"`
	Seed      uint64  `msgpack:"seed"`
	Created   int64   `msgpack:"created"` // unix milliseconds
	Frames    []Frame `msgpack:"frames"`
}

// Recorder accumulates frames. It is not safe for concurrent use; the game
// loop is its only writer.
type Recorder struct {
	rec Recording
}

func NewRecorder(sessionID string, seed uint64, createdMs int64) *Recorder {
	return &Recorder{rec: Recording{
		Magic:     Magic,
		Version:   Version,
		SessionID: sessionID,
		Seed:      seed,
		Created:   createdMs,
	}}
}

// Record appends a frame. events is copied.
func (r *Recorder) Record(deltaMs float64, events []match.Event) {
	f := Frame{DeltaMs: deltaMs}
	if len(events) > 0 {
		f.Events = append([]match.Event(nil), events...)
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording returns the frames recorded so far. The result shares no
// storage with the recorder.
func (r *Recorder) Recording() *Recording {
	out := r.rec
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return &out
}

// Summary is what a re-simulation produced.
type Summary struct {
	Frames  int
	Played  float64 // milliseconds of simulated play
	Bounces int
	Points  [2]int
	Wins    [2]int
	Quit    bool
	Final   match.Snapshot
}

// Run replays rec from its seed. It stops early at a Quit frame.
func Run(rec *Recording) Summary {
	s := match.New(rec.Seed)
	var sum Summary

	for _, f := range rec.Frames {
		playing := s.Phase == match.Playing
		res := match.Tick(s, f.DeltaMs, f.Events)
		sum.Frames++
		if res.Quit {
			sum.Quit = true
			break
		}
		if playing {
			sum.Played += match.Clamp(f.DeltaMs, 0, match.MaxDeltaMs)
		}
		sum.Bounces += res.Bounces
		if res.Scorer != match.NoPlayer {
			sum.Points[res.Scorer-1]++
		}
		if res.To == match.GameOver && res.Transitioned() {
			sum.Wins[s.Winner-1]++
		}
	}

	sum.Final = s.Snapshot()
	return sum
}
