package actor

import "github.com/go-gl/mathgl/mgl64"

// Translatable is a position source. Bodies read it on every query and
// never write through it.
type Translatable interface {
	Position() mgl64.Vec3
}

// PositionFunc adapts a closure to Translatable
type PositionFunc func() mgl64.Vec3

func (f PositionFunc) Position() mgl64.Vec3 {
	return f()
}

// Transform is a movable point in 3D space
type Transform struct {
	position mgl64.Vec3
}

// NewTransform creates a transform at position
func NewTransform(position mgl64.Vec3) *Transform {
	return &Transform{position: position}
}

func (t *Transform) Position() mgl64.Vec3 {
	return t.position
}

func (t *Transform) SetPosition(position mgl64.Vec3) {
	t.position = position
}

// Translate moves the transform by delta
func (t *Transform) Translate(delta mgl64.Vec3) {
	t.position = t.position.Add(delta)
}
