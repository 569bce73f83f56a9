package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypeCapsule
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeSphere:
		return "sphere"
	case ShapeTypeBox:
		return "box"
	case ShapeTypeCapsule:
		return "capsule"
	}
	return "unknown"
}

// lengthEpsilon is the squared length under which a direction is considered zero
const lengthEpsilon = 1e-6

// WorldUp is the default capsule axis
var WorldUp = mgl64.Vec3{0, 1, 0}

// ShapeInterface is implemented by the closed set of collision shapes.
// Shapes never store a world position: they are placed each query at the
// owning body's position plus their local offset.
type ShapeInterface interface {
	GetType() ShapeType
	GetOffset() mgl64.Vec3
	// Center returns the absolute shape center for a body at position
	Center(position mgl64.Vec3) mgl64.Vec3

	shape()
}

// Sphere represents a spherical collision shape
type Sphere struct {
	Radius float64
	Offset mgl64.Vec3
}

func (s Sphere) GetType() ShapeType    { return ShapeTypeSphere }
func (s Sphere) GetOffset() mgl64.Vec3 { return s.Offset }
func (s Sphere) shape()                {}

func (s Sphere) Center(position mgl64.Vec3) mgl64.Vec3 {
	return position.Add(s.Offset)
}

// Box represents an axis-aligned box collision shape
// The box is defined by its half-extents (half-width, half-height, half-depth)
type Box struct {
	HalfExtents mgl64.Vec3
	Offset      mgl64.Vec3
}

func (b Box) GetType() ShapeType    { return ShapeTypeBox }
func (b Box) GetOffset() mgl64.Vec3 { return b.Offset }
func (b Box) shape()                {}

func (b Box) Center(position mgl64.Vec3) mgl64.Vec3 {
	return position.Add(b.Offset)
}

// Bounds returns the world space extents of the box for a body at position
func (b Box) Bounds(position mgl64.Vec3) AABB {
	center := b.Center(position)

	return AABB{
		Min: center.Sub(b.HalfExtents),
		Max: center.Add(b.HalfExtents),
	}
}

// Capsule is a segment of length 2*HalfHeight along Up, swept by Radius
type Capsule struct {
	Radius     float64
	HalfHeight float64
	Offset     mgl64.Vec3
	Up         mgl64.Vec3
}

// NewCapsule creates a capsule aligned with WorldUp
func NewCapsule(radius, halfHeight float64, offset mgl64.Vec3) Capsule {
	return Capsule{
		Radius:     radius,
		HalfHeight: halfHeight,
		Offset:     offset,
		Up:         WorldUp,
	}
}

func (c Capsule) GetType() ShapeType    { return ShapeTypeCapsule }
func (c Capsule) GetOffset() mgl64.Vec3 { return c.Offset }
func (c Capsule) shape()                {}

func (c Capsule) Center(position mgl64.Vec3) mgl64.Vec3 {
	return position.Add(c.Offset)
}

// Axis returns the normalized capsule axis, WorldUp if Up is degenerate
func (c Capsule) Axis() mgl64.Vec3 {
	if c.Up.LenSqr() <= lengthEpsilon {
		return WorldUp
	}

	return c.Up.Normalize()
}

// Segment returns the end points of the capsule core segment
func (c Capsule) Segment(position mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	center := c.Center(position)
	half := c.Axis().Mul(c.HalfHeight)

	return center.Sub(half), center.Add(half)
}
