// Package match implements the Pong match loop: paddle and ball integration,
// wall and paddle collisions, scoring and the NotStarted/Playing/GameOver
// state machine. It is pure simulation; rendering, audio and key capture are
// left to callers.
package match

// Field geometry. Distances are pixels, speeds are pixels per millisecond.
const (
	Width  = 960.0
	Height = 720.0

	PaddleWidth  = 7.0
	PaddleHeight = 100.0
	PaddleSpeed  = 0.5

	// Left edges of the two paddles.
	Paddle1X = 30.0
	Paddle2X = Width - 50.0

	BallSize = 25.0
)

// Rules.
const (
	WinScore = 5

	// SpeedUp scales the horizontal ball speed on every paddle hit. There is
	// no upper bound.
	SpeedUp = 1.1

	MinLaunchSpeed = 0.2
	MaxLaunchSpeed = 0.4

	// MaxDeltaMs caps one tick at a single 60 Hz frame.
	MaxDeltaMs = 1000.0 / 60.0
)

// Rect is an axis aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether r and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
