package match

// Result reports what happened during one tick. Bounces counts wall and
// paddle collisions and is what the audio collaborator listens to.
type Result struct {
	From, To Phase
	Bounces  int
	Scorer   Player
	Quit     bool
}

// Transitioned reports whether the tick changed the phase.
func (r Result) Transitioned() bool {
	return r.From != r.To
}

// Tick advances the match by deltaMs milliseconds after applying events.
// deltaMs is clamped to [0, MaxDeltaMs]. A Quit press is reported and leaves
// the state untouched.
func Tick(s *State, deltaMs float64, events []Event) Result {
	res := Result{From: s.Phase, To: s.Phase}
	if pressed(events, Quit) {
		res.Quit = true
		return res
	}

	switch s.Phase {
	case NotStarted:
		if pressed(events, Confirm) {
			s.start()
		}
	case GameOver:
		if pressed(events, Confirm) {
			s.restart()
		}
	case Playing:
		s.applyIntents(events)
		s.step(Clamp(deltaMs, 0, MaxDeltaMs), &res)
	}

	res.To = s.Phase
	return res
}

func (s *State) start() {
	s.resetBall()
	s.Winner = NoPlayer
	s.Phase = Playing
}

// restart goes back to NotStarted rather than straight into play; a second
// Confirm is needed to serve.
func (s *State) restart() {
	s.Score = [2]int{}
	s.centerPaddles()
	for i := range s.Paddles {
		s.Paddles[i].Intent = 0
	}
	s.Winner = NoPlayer
	s.Phase = NotStarted
}

func (s *State) step(dt float64, res *Result) {
	for i := range s.Paddles {
		p := &s.Paddles[i]
		p.Y = Clamp(p.Y+p.Intent*dt, 0, Height-p.H)
	}

	b := &s.Ball
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Top() <= 0 || b.Bottom() >= Height {
		b.VY = -b.VY
		res.Bounces++
	}

	left, right := s.Paddles[0].Rect, s.Paddles[1].Rect
	if b.Overlaps(left) && b.VX < 0 {
		b.VX *= -SpeedUp
		b.X = left.Right()
		res.Bounces++
	}
	if b.Overlaps(right) && b.VX > 0 {
		b.VX *= -SpeedUp
		b.X = right.Left() - b.W
		res.Bounces++
	}

	if b.Left() <= 0 {
		s.award(Player2, res)
	} else if b.Right() >= Width {
		s.award(Player1, res)
	}
}

func (s *State) award(p Player, res *Result) {
	s.Score[p-1]++
	res.Scorer = p
	if s.Score[p-1] >= WinScore {
		s.Winner = p
		s.Phase = GameOver
		return
	}
	s.resetBall()
}
