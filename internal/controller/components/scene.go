package components

// Rect is the world-space box of a drawable entity, in field pixels.
type Rect struct {
	X, Y, W, H float64
}

type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeBall
)

type Role uint8

const (
	RolePaddle1 Role = iota
	RolePaddle2
	RoleBall
)

func (r Role) String() string {
	switch r {
	case RolePaddle1:
		return "paddle1"
	case RolePaddle2:
		return "paddle2"
	case RoleBall:
		return "ball"
	}
	return "unknown"
}

// Sprite says how an entity is drawn. Hidden entities stay in the world but
// are skipped by the renderer.
type Sprite struct {
	Shape  Shape
	Role   Role
	Hidden bool
}
