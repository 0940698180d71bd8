package systems

import (
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
)

// Bouncer is told how many collisions happened in a frame.
type Bouncer interface {
	Bounce(n int)
}

// BounceSystem forwards collision counts to the audio side.
type BounceSystem struct {
	Bouncer Bouncer

	output ecs.Resource[components.FrameOutput]
}

func (s *BounceSystem) Initialize(w *ecs.World) {
	s.output = ecs.NewResource[components.FrameOutput](w)
}

func (s *BounceSystem) Update(_ *ecs.World) {
	if s.Bouncer == nil {
		return
	}
	if n := s.output.Get().Result.Bounces; n > 0 {
		s.Bouncer.Bounce(n)
	}
}

func (s *BounceSystem) Finalize(_ *ecs.World) {}
