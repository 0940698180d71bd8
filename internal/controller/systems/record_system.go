package systems

import (
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/match"
)

// Recorder receives every frame's input before it is simulated.
type Recorder interface {
	Record(deltaMs float64, events []match.Event)
}

// RecordSystem feeds frame input to a Recorder. It must run before the match
// system so a quitting frame is recorded too.
type RecordSystem struct {
	Recorder Recorder

	input ecs.Resource[components.FrameInput]
}

func (s *RecordSystem) Initialize(w *ecs.World) {
	s.input = ecs.NewResource[components.FrameInput](w)
}

func (s *RecordSystem) Update(_ *ecs.World) {
	if s.Recorder == nil {
		return
	}
	in := s.input.Get()
	s.Recorder.Record(in.DeltaMs, in.Events)
}

func (s *RecordSystem) Finalize(_ *ecs.World) {}
