// Package narrowphase implements exact intersection tests between the
// sphere, box and capsule shapes of the actor package. All predicates are
// pure and boundary inclusive: touching shapes intersect.
package narrowphase

import (
	"github.com/akmonengine/impact/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance under which lengths and denominators are zero
const Epsilon = 1e-6

// Intersects tests shapeA placed at posA against shapeB placed at posB.
// Mirrored combinations route to the same predicate with swapped
// arguments, so the result does not depend on argument order.
func Intersects(shapeA actor.ShapeInterface, posA mgl64.Vec3, shapeB actor.ShapeInterface, posB mgl64.Vec3) bool {
	switch a := shapeA.(type) {
	case actor.Sphere:
		switch b := shapeB.(type) {
		case actor.Sphere:
			return SphereSphere(a, posA, b, posB)
		case actor.Box:
			return SphereBox(a, posA, b, posB)
		case actor.Capsule:
			return CapsuleSphere(b, posB, a, posA)
		}
	case actor.Box:
		switch b := shapeB.(type) {
		case actor.Sphere:
			return SphereBox(b, posB, a, posA)
		case actor.Box:
			return BoxBox(a, posA, b, posB)
		case actor.Capsule:
			return CapsuleBox(b, posB, a, posA)
		}
	case actor.Capsule:
		switch b := shapeB.(type) {
		case actor.Sphere:
			return CapsuleSphere(a, posA, b, posB)
		case actor.Box:
			return CapsuleBox(a, posA, b, posB)
		case actor.Capsule:
			return CapsuleCapsule(a, posA, b, posB)
		}
	}

	return false
}

// SphereSphere compares the squared center distance to the squared radii sum
func SphereSphere(a actor.Sphere, posA mgl64.Vec3, b actor.Sphere, posB mgl64.Vec3) bool {
	r := a.Radius + b.Radius

	return a.Center(posA).Sub(b.Center(posB)).LenSqr() <= r*r
}

// BoxBox is a per axis overlap test, boxes are never rotated
func BoxBox(a actor.Box, posA mgl64.Vec3, b actor.Box, posB mgl64.Vec3) bool {
	return a.Bounds(posA).Overlaps(b.Bounds(posB))
}

// SphereBox clamps the sphere center into the box and compares the
// distance to that closest point with the radius
func SphereBox(sphere actor.Sphere, spherePos mgl64.Vec3, box actor.Box, boxPos mgl64.Vec3) bool {
	center := sphere.Center(spherePos)
	closest := box.Bounds(boxPos).ClosestPoint(center)

	return center.Sub(closest).LenSqr() <= sphere.Radius*sphere.Radius
}

// CapsuleSphere measures the sphere center against the capsule core segment
func CapsuleSphere(capsule actor.Capsule, capsulePos mgl64.Vec3, sphere actor.Sphere, spherePos mgl64.Vec3) bool {
	start, end := capsule.Segment(capsulePos)
	center := sphere.Center(spherePos)
	closest := ClosestPointOnSegment(center, start, end)
	r := capsule.Radius + sphere.Radius

	return closest.Sub(center).LenSqr() <= r*r
}

// CapsuleCapsule compares the distance between both core segments with the radii sum
func CapsuleCapsule(a actor.Capsule, posA mgl64.Vec3, b actor.Capsule, posB mgl64.Vec3) bool {
	a0, a1 := a.Segment(posA)
	b0, b1 := b.Segment(posB)
	r := a.Radius + b.Radius

	return SegmentSegmentDistanceSquared(a0, a1, b0, b1) <= r*r
}

// CapsuleBox passes if the core segment crosses the box inflated by the
// capsule radius, or if either end cap overlaps the box itself
func CapsuleBox(capsule actor.Capsule, capsulePos mgl64.Vec3, box actor.Box, boxPos mgl64.Vec3) bool {
	start, end := capsule.Segment(capsulePos)
	bounds := box.Bounds(boxPos)

	if SegmentIntersectsAABB(start, end, bounds.Expand(capsule.Radius)) {
		return true
	}

	radiusSq := capsule.Radius * capsule.Radius

	return start.Sub(bounds.ClosestPoint(start)).LenSqr() <= radiusSq ||
		end.Sub(bounds.ClosestPoint(end)).LenSqr() <= radiusSq
}
