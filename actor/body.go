package actor

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNilBody      = errors.New("body is nil")
	ErrMissingId    = errors.New("body id is empty")
	ErrNilTarget    = errors.New("body position source is nil")
	ErrNilShape     = errors.New("body shape is nil")
	ErrInvalidShape = errors.New("body shape is not a Sphere, Box or Capsule value")
)

// CollisionBody binds a shape to an external position source.
// Id is unique within an engine, Type is a shared category tag.
type CollisionBody struct {
	Id     string
	Type   string
	Target Translatable
	Shape  ShapeInterface
}

// NewCollisionBody creates a body, see Validate for the required fields
func NewCollisionBody(id, bodyType string, target Translatable, shape ShapeInterface) *CollisionBody {
	return &CollisionBody{
		Id:     id,
		Type:   bodyType,
		Target: target,
		Shape:  shape,
	}
}

// Position reads the current position of the target
func (b *CollisionBody) Position() mgl64.Vec3 {
	return b.Target.Position()
}

// Validate reports the first missing or malformed required field
func (b *CollisionBody) Validate() error {
	switch {
	case b == nil:
		return ErrNilBody
	case b.Id == "":
		return ErrMissingId
	case b.Target == nil:
		return ErrNilTarget
	case b.Shape == nil:
		return ErrNilShape
	}

	if transform, ok := b.Target.(*Transform); ok && transform == nil {
		return ErrNilTarget
	}

	switch b.Shape.(type) {
	case Sphere, Box, Capsule:
		return nil
	default:
		return ErrInvalidShape
	}
}
