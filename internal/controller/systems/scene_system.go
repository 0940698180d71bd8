package systems

import (
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/controller/entities"
)

// SceneSystem mirrors the latest snapshot onto the scene entities.
type SceneSystem struct {
	Scene *entities.Scene

	output ecs.Resource[components.FrameOutput]
}

func (s *SceneSystem) Initialize(w *ecs.World) {
	s.output = ecs.NewResource[components.FrameOutput](w)
}

func (s *SceneSystem) Update(_ *ecs.World) {
	s.Scene.Sync(s.output.Get().Snapshot)
}

func (s *SceneSystem) Finalize(_ *ecs.World) {}
