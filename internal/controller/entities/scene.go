package entities

import (
	"github.com/mlange-42/ark/ecs"

	"pong/internal/controller/components"
	"pong/internal/hud"
	"pong/internal/match"
)

// Scene owns the drawable entities: two paddles and the ball.
type Scene struct {
	World   *ecs.World
	Bodies  *ecs.Map2[components.Rect, components.Sprite]
	Paddles [2]ecs.Entity
	Ball    ecs.Entity
}

// NewScene creates the scene entities from an initial snapshot.
func NewScene(world *ecs.World, snap match.Snapshot) *Scene {
	s := &Scene{
		World:  world,
		Bodies: ecs.NewMap2[components.Rect, components.Sprite](world),
	}
	hidden := !hud.ShowField(snap.Phase)

	for i, role := range []components.Role{components.RolePaddle1, components.RolePaddle2} {
		rect := toRect(snap.Paddles[i])
		s.Paddles[i] = s.Bodies.NewEntity(&rect, &components.Sprite{Shape: components.ShapeBox, Role: role, Hidden: hidden})
	}
	ball := toRect(snap.Ball)
	s.Ball = s.Bodies.NewEntity(&ball, &components.Sprite{Shape: components.ShapeBall, Role: components.RoleBall, Hidden: hidden})
	return s
}

// Sync copies positions and visibility from snap onto the entities.
func (s *Scene) Sync(snap match.Snapshot) {
	hidden := !hud.ShowField(snap.Phase)
	for i, e := range s.Paddles {
		s.update(e, snap.Paddles[i], hidden)
	}
	s.update(s.Ball, snap.Ball, hidden)
}

func (s *Scene) update(e ecs.Entity, r match.Rect, hidden bool) {
	if !s.World.Alive(e) {
		return
	}
	rect, sprite := s.Bodies.Get(e)
	*rect = toRect(r)
	sprite.Hidden = hidden
}

func toRect(r match.Rect) components.Rect {
	return components.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
