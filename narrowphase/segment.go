package narrowphase

import (
	"github.com/akmonengine/impact/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ClosestPointOnSegment projects point onto segment [a, b]
func ClosestPointOnSegment(point, a, b mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.LenSqr()
	if lenSq <= Epsilon {
		return a
	}

	t := mgl64.Clamp(point.Sub(a).Dot(ab)/lenSq, 0, 1)

	return a.Add(ab.Mul(t))
}

// SegmentSegmentDistanceSquared returns the squared minimum distance between
// segments [p1, q1] and [p2, q2]. Degenerate (point) segments and parallel
// segments are handled by clamping the parameters into [0, 1].
func SegmentSegmentDistanceSquared(p1, q1, p2, q2 mgl64.Vec3) float64 {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	if a <= Epsilon && e <= Epsilon {
		return p1.Sub(p2).LenSqr()
	}

	var s, t float64

	switch {
	case a <= Epsilon:
		s = 0
		t = mgl64.Clamp(f/e, 0, 1)
	case e <= Epsilon:
		t = 0
		s = mgl64.Clamp(-d1.Dot(r)/a, 0, 1)
	default:
		c := d1.Dot(r)
		b := d1.Dot(d2)
		denom := a*e - b*b

		// parallel segments: any s works, start from p1
		if denom > Epsilon {
			s = mgl64.Clamp((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e

		if t < 0 {
			t = 0
			s = mgl64.Clamp(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = mgl64.Clamp((b-c)/a, 0, 1)
		}
	}

	c1 := p1.Add(d1.Mul(s))
	c2 := p2.Add(d2.Mul(t))

	return c1.Sub(c2).LenSqr()
}

// SegmentIntersectsAABB clips segment [start, end] against the three slabs of box
func SegmentIntersectsAABB(start, end mgl64.Vec3, box actor.AABB) bool {
	if box.ContainsPoint(start) || box.ContainsPoint(end) {
		return true
	}

	dir := end.Sub(start)
	tMin, tMax := 0.0, 1.0

	for axis := 0; axis < 3; axis++ {
		var ok bool
		tMin, tMax, ok = slab(start[axis], dir[axis], box.Min[axis], box.Max[axis], tMin, tMax)
		if !ok {
			return false
		}
	}

	return tMax >= tMin
}

func slab(start, dir, boxMin, boxMax, tMin, tMax float64) (float64, float64, bool) {
	if dir <= Epsilon && dir >= -Epsilon {
		return tMin, tMax, start >= boxMin && start <= boxMax
	}

	inv := 1 / dir
	t0 := (boxMin - start) * inv
	t1 := (boxMax - start) * inv
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	tMin = max(tMin, t0)
	tMax = min(tMax, t1)

	return tMin, tMax, tMax >= tMin
}
