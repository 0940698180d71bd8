package match

import (
	"math"
	"math/rand/v2"
)

// Phase is the lifecycle stage of a match.
type Phase uint8

const (
	NotStarted Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player identifies a side of the field. NoPlayer is used while nobody has
// won.
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

// Paddle is a player's bat. Intent is the commanded vertical velocity set by
// held keys.
type Paddle struct {
	Rect
	Intent float64
}

// Ball carries its velocity in pixels per millisecond.
type Ball struct {
	Rect
	VX, VY float64
}

// State is everything the match loop owns. It is not safe for concurrent use;
// a single loop is expected to drive it through Tick.
type State struct {
	Phase   Phase
	Paddles [2]Paddle
	Ball    Ball
	Score   [2]int
	Winner  Player

	seed uint64
	rng  *rand.Rand
}

// New returns a match in the NotStarted phase with centered paddles and a
// launched ball. The seed fully determines every ball launch.
func New(seed uint64) *State {
	s := &State{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.Paddles[0] = Paddle{Rect: Rect{X: Paddle1X, W: PaddleWidth, H: PaddleHeight}}
	s.Paddles[1] = Paddle{Rect: Rect{X: Paddle2X, W: PaddleWidth, H: PaddleHeight}}
	s.Ball.W, s.Ball.H = BallSize, BallSize
	s.centerPaddles()
	s.resetBall()
	return s
}

// Seed returns the seed the match was created with.
func (s *State) Seed() uint64 {
	return s.seed
}

func (s *State) centerPaddles() {
	for i := range s.Paddles {
		s.Paddles[i].Y = (Height - s.Paddles[i].H) / 2
	}
}

// resetBall centers the ball and gives each axis an independent speed in
// [MinLaunchSpeed, MaxLaunchSpeed) with a random sign.
func (s *State) resetBall() {
	s.Ball.X = Width/2 - s.Ball.W/2
	s.Ball.Y = Height/2 - s.Ball.H/2
	s.Ball.VX = s.launchSpeed()
	s.Ball.VY = s.launchSpeed()
}

func (s *State) launchSpeed() float64 {
	v := MinLaunchSpeed + s.rng.Float64()*(MaxLaunchSpeed-MinLaunchSpeed)
	if v >= MaxLaunchSpeed {
		v = math.Nextafter(MaxLaunchSpeed, 0)
	}
	if s.rng.IntN(2) == 0 {
		return -v
	}
	return v
}

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Paddles [2]Rect
	Ball    Rect
	Score   [2]int
	Phase   Phase
	Winner  Player
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Paddles: [2]Rect{s.Paddles[0].Rect, s.Paddles[1].Rect},
		Ball:    s.Ball.Rect,
		Score:   s.Score,
		Phase:   s.Phase,
		Winner:  s.Winner,
	}
}
