package scene

import (
	"fmt"

	"github.com/akmonengine/impact/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Build converts the shape description into an actor shape
func (s ShapeConfig) Build() (actor.ShapeInterface, error) {
	offset, err := toVector(s.Offset, mgl64.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}

	switch s.Kind {
	case KindSphere:
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere radius must be positive", ErrInvalidShape)
		}
		return actor.Sphere{Radius: s.Radius, Offset: offset}, nil

	case KindBox:
		if len(s.HalfExtents) == 0 {
			return nil, fmt.Errorf("%w: box requires halfExtents", ErrInvalidShape)
		}
		halfExtents, err := toVector(s.HalfExtents, mgl64.Vec3{})
		if err != nil {
			return nil, fmt.Errorf("halfExtents: %w", err)
		}
		if halfExtents.X() < 0 || halfExtents.Y() < 0 || halfExtents.Z() < 0 {
			return nil, fmt.Errorf("%w: box halfExtents must not be negative", ErrInvalidShape)
		}
		return actor.Box{HalfExtents: halfExtents, Offset: offset}, nil

	case KindCapsule:
		if s.Radius <= 0 || s.HalfHeight < 0 {
			return nil, fmt.Errorf("%w: capsule needs a positive radius and a non negative halfHeight", ErrInvalidShape)
		}
		up, err := toVector(s.Up, actor.WorldUp)
		if err != nil {
			return nil, fmt.Errorf("up: %w", err)
		}
		capsule := actor.NewCapsule(s.Radius, s.HalfHeight, offset)
		capsule.Up = up
		return capsule, nil

	case "":
		return nil, fmt.Errorf("%w: shape kind", ErrMissingField)
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, s.Kind)
}
