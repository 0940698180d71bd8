package components

import "pong/internal/match"

// FrameInput is what the driver hands the systems for one frame.
type FrameInput struct {
	DeltaMs float64
	Events  []match.Event
}

// FrameOutput is what the match produced this frame.
type FrameOutput struct {
	Result   match.Result
	Snapshot match.Snapshot
}

// Game holds the match aggregate. Only the match system mutates it.
type Game struct {
	State *match.State
}

// MatchInfo identifies the session and the match currently being played.
// MatchID changes every time a fresh match is served.
type MatchInfo struct {
	SessionID string
	MatchID   string
	Matches   int
	Frames    int64
}
