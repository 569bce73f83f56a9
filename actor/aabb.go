package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap, touching faces included
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// ClosestPoint clamps point into the box
func (a AABB) ClosestPoint(point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Min(math.Max(point.X(), a.Min.X()), a.Max.X()),
		math.Min(math.Max(point.Y(), a.Min.Y()), a.Max.Y()),
		math.Min(math.Max(point.Z(), a.Min.Z()), a.Max.Z()),
	}
}

// Expand grows the box by amount on every side
func (a AABB) Expand(amount float64) AABB {
	grow := mgl64.Vec3{amount, amount, amount}

	return AABB{Min: a.Min.Sub(grow), Max: a.Max.Add(grow)}
}
