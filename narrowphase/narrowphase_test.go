package narrowphase

import (
	"math/rand"
	"testing"

	"github.com/akmonengine/impact/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Test helper functions

func unitBox() actor.Box {
	return actor.Box{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}}
}

func verticalCapsule(radius, halfHeight float64) actor.Capsule {
	return actor.NewCapsule(radius, halfHeight, mgl64.Vec3{})
}

// SphereSphere tests

func TestSphereSphere(t *testing.T) {
	tests := []struct {
		name     string
		a, b     actor.Sphere
		posB     mgl64.Vec3
		expected bool
	}{
		{"overlapping", actor.Sphere{Radius: 1}, actor.Sphere{Radius: 1}, mgl64.Vec3{1.5, 0, 0}, true},
		{"touching at exactly r1+r2", actor.Sphere{Radius: 1}, actor.Sphere{Radius: 1}, mgl64.Vec3{2, 0, 0}, true},
		{"separated", actor.Sphere{Radius: 1}, actor.Sphere{Radius: 1}, mgl64.Vec3{2.01, 0, 0}, false},
		{"concentric", actor.Sphere{Radius: 0.1}, actor.Sphere{Radius: 3}, mgl64.Vec3{}, true},
		{"offset brings them together", actor.Sphere{Radius: 1, Offset: mgl64.Vec3{2, 0, 0}}, actor.Sphere{Radius: 1}, mgl64.Vec3{3.5, 0, 0}, true},
		{"offset pulls them apart", actor.Sphere{Radius: 1, Offset: mgl64.Vec3{-2, 0, 0}}, actor.Sphere{Radius: 1}, mgl64.Vec3{1.5, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SphereSphere(tt.a, mgl64.Vec3{}, tt.b, tt.posB); got != tt.expected {
				t.Errorf("SphereSphere() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// BoxBox tests

func TestBoxBox(t *testing.T) {
	tests := []struct {
		name     string
		posB     mgl64.Vec3
		expected bool
	}{
		{"identical", mgl64.Vec3{}, true},
		{"touching faces at 1.0", mgl64.Vec3{1, 0, 0}, true},
		{"gap of 0.5 on X", mgl64.Vec3{1.5, 0, 0}, false},
		{"overlap on X and Y but not Z", mgl64.Vec3{0.5, 0.5, 1.25}, false},
		{"touching corners", mgl64.Vec3{1, 1, 1}, true},
		{"negative direction", mgl64.Vec3{0, -0.75, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxBox(unitBox(), mgl64.Vec3{}, unitBox(), tt.posB); got != tt.expected {
				t.Errorf("BoxBox() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBoxBoxOffset(t *testing.T) {
	floor := actor.Box{HalfExtents: mgl64.Vec3{60, 0.25, 60}, Offset: mgl64.Vec3{0, -0.25, 0}}
	cube := actor.Box{HalfExtents: mgl64.Vec3{0.9, 0.9, 0.9}}

	if !BoxBox(cube, mgl64.Vec3{-3, 0.5, 0}, floor, mgl64.Vec3{}) {
		t.Errorf("cube resting through the floor top should collide")
	}
	if BoxBox(cube, mgl64.Vec3{-3, 1, 0}, floor, mgl64.Vec3{}) {
		t.Errorf("cube lifted above the floor top should not collide")
	}
}

// SphereBox tests

func TestSphereBox(t *testing.T) {
	tests := []struct {
		name      string
		spherePos mgl64.Vec3
		expected  bool
	}{
		{"center inside box", mgl64.Vec3{0.1, 0, 0}, true},
		{"touching a face", mgl64.Vec3{1.5, 0, 0}, true},
		{"outside a face", mgl64.Vec3{1.6, 0, 0}, false},
		{"near an edge within radius", mgl64.Vec3{1.2, 1.2, 0}, true},
		{"near a corner outside radius", mgl64.Vec3{1.2, 1.2, 1.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SphereBox(actor.Sphere{Radius: 1}, tt.spherePos, unitBox(), mgl64.Vec3{}); got != tt.expected {
				t.Errorf("SphereBox() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// CapsuleSphere tests

func TestCapsuleSphere(t *testing.T) {
	capsule := verticalCapsule(0.5, 1)

	tests := []struct {
		name      string
		spherePos mgl64.Vec3
		expected  bool
	}{
		{"beside the segment", mgl64.Vec3{0.9, 0.5, 0}, true},
		{"touching the side", mgl64.Vec3{1, 0, 0}, true},
		{"beyond the side", mgl64.Vec3{1.01, 0, 0}, false},
		{"above the top cap", mgl64.Vec3{0, 1.9, 0}, true},
		{"far above the top cap", mgl64.Vec3{0, 2.1, 0}, false},
		{"diagonal to the bottom cap", mgl64.Vec3{0.7, -1.7, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapsuleSphere(capsule, mgl64.Vec3{}, actor.Sphere{Radius: 0.5}, tt.spherePos); got != tt.expected {
				t.Errorf("CapsuleSphere() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// CapsuleCapsule tests

func TestCapsuleCapsule(t *testing.T) {
	a := verticalCapsule(0.5, 1)
	b := verticalCapsule(0.5, 1)

	t.Run("parallel segments at exactly r1+r2", func(t *testing.T) {
		if !CapsuleCapsule(a, mgl64.Vec3{}, b, mgl64.Vec3{1, 0, 0}) {
			t.Errorf("parallel capsules touching at r1+r2 should collide")
		}
	})

	t.Run("parallel segments at r1+r2+0.01", func(t *testing.T) {
		if CapsuleCapsule(a, mgl64.Vec3{}, b, mgl64.Vec3{1.01, 0, 0}) {
			t.Errorf("parallel capsules separated by 0.01 should not collide")
		}
	})

	t.Run("parallel but shifted along the axis", func(t *testing.T) {
		if CapsuleCapsule(a, mgl64.Vec3{}, b, mgl64.Vec3{0.5, 3.5, 0}) {
			t.Errorf("capsules stacked with a cap gap should not collide")
		}
		if !CapsuleCapsule(a, mgl64.Vec3{}, b, mgl64.Vec3{0, 2.9, 0}) {
			t.Errorf("capsules stacked with overlapping caps should collide")
		}
	})

	t.Run("crossing segments", func(t *testing.T) {
		horizontal := actor.Capsule{Radius: 0.1, HalfHeight: 2, Up: mgl64.Vec3{1, 0, 0}}
		if !CapsuleCapsule(a, mgl64.Vec3{}, horizontal, mgl64.Vec3{0, 0, 0.55}) {
			t.Errorf("crossing capsules within radius should collide")
		}
		if CapsuleCapsule(a, mgl64.Vec3{}, horizontal, mgl64.Vec3{0, 0, 0.7}) {
			t.Errorf("crossing capsules beyond radius should not collide")
		}
	})

	t.Run("degenerate capsules behave like spheres", func(t *testing.T) {
		pointA := verticalCapsule(1, 0)
		pointB := verticalCapsule(1, 0)
		if !CapsuleCapsule(pointA, mgl64.Vec3{}, pointB, mgl64.Vec3{0, 0, 2}) {
			t.Errorf("point capsules touching should collide")
		}
		if CapsuleCapsule(pointA, mgl64.Vec3{}, pointB, mgl64.Vec3{0, 0, 2.1}) {
			t.Errorf("point capsules apart should not collide")
		}
	})
}

// CapsuleBox tests

func TestCapsuleBox(t *testing.T) {
	capsule := verticalCapsule(0.5, 1)
	box := actor.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name     string
		boxPos   mgl64.Vec3
		expected bool
	}{
		{"segment inside the box", mgl64.Vec3{}, true},
		{"segment within radius of a face", mgl64.Vec3{1.4, 0, 0}, true},
		{"segment beyond radius of a face", mgl64.Vec3{1.6, 0, 0}, false},
		{"end cap resting on top", mgl64.Vec3{0, -2.4, 0}, true},
		{"end cap above the top", mgl64.Vec3{0, -2.6, 0}, false},
		{"box far away", mgl64.Vec3{100, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapsuleBox(capsule, mgl64.Vec3{}, box, tt.boxPos); got != tt.expected {
				t.Errorf("CapsuleBox() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCapsuleBoxTiltedSegment(t *testing.T) {
	capsule := actor.Capsule{Radius: 0.25, HalfHeight: 3, Up: mgl64.Vec3{1, 1, 0}}
	box := unitBox()

	// the segment passes diagonally through the box, both end points outside
	if !CapsuleBox(capsule, mgl64.Vec3{}, box, mgl64.Vec3{}) {
		t.Errorf("segment crossing the box should collide")
	}
	if CapsuleBox(capsule, mgl64.Vec3{0, 0, 2}, box, mgl64.Vec3{}) {
		t.Errorf("segment passing beside the box should not collide")
	}
}

// Intersects tests

func TestIntersectsDispatch(t *testing.T) {
	sphere := actor.Sphere{Radius: 1}
	box := unitBox()
	capsule := verticalCapsule(0.5, 1)

	tests := []struct {
		name     string
		a        actor.ShapeInterface
		b        actor.ShapeInterface
		posB     mgl64.Vec3
		expected bool
	}{
		{"sphere sphere", sphere, sphere, mgl64.Vec3{1.5, 0, 0}, true},
		{"sphere box", sphere, box, mgl64.Vec3{1.5, 0, 0}, true},
		{"box sphere", box, sphere, mgl64.Vec3{1.6, 0, 0}, false},
		{"box box", box, box, mgl64.Vec3{1, 0, 0}, true},
		{"capsule sphere", capsule, sphere, mgl64.Vec3{1.5, 0, 0}, true},
		{"sphere capsule", sphere, capsule, mgl64.Vec3{1.6, 0, 0}, false},
		{"capsule capsule", capsule, capsule, mgl64.Vec3{1, 0, 0}, true},
		{"capsule box", capsule, box, mgl64.Vec3{0.9, 0, 0}, true},
		{"box capsule", box, capsule, mgl64.Vec3{1.1, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, mgl64.Vec3{}, tt.b, tt.posB); got != tt.expected {
				t.Errorf("Intersects() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIntersectsSymmetry(t *testing.T) {
	shapes := []actor.ShapeInterface{
		actor.Sphere{Radius: 0.75},
		actor.Sphere{Radius: 1.2, Offset: mgl64.Vec3{0, 0.5, 0}},
		actor.Box{HalfExtents: mgl64.Vec3{0.9, 0.4, 0.3}},
		actor.Box{HalfExtents: mgl64.Vec3{2, 0.25, 2}, Offset: mgl64.Vec3{0, -0.25, 0}},
		actor.NewCapsule(0.5, 0.7, mgl64.Vec3{0, 0.35, 0}),
		actor.Capsule{Radius: 0.3, HalfHeight: 1.5, Up: mgl64.Vec3{1, 0, 1}},
	}

	rng := rand.New(rand.NewSource(42))
	randomPosition := func() mgl64.Vec3 {
		return mgl64.Vec3{
			rng.Float64()*6 - 3,
			rng.Float64()*6 - 3,
			rng.Float64()*6 - 3,
		}
	}

	for i := 0; i < 200; i++ {
		posA := randomPosition()
		posB := randomPosition()

		for _, a := range shapes {
			for _, b := range shapes {
				ab := Intersects(a, posA, b, posB)
				ba := Intersects(b, posB, a, posA)
				if ab != ba {
					t.Fatalf("Intersects(%v at %v, %v at %v) = %v, reversed = %v",
						a.GetType(), posA, b.GetType(), posB, ab, ba)
				}
			}
		}
	}
}

func BenchmarkIntersects(b *testing.B) {
	capsule := verticalCapsule(0.5, 1)
	box := unitBox()
	pos := mgl64.Vec3{1.2, 0.3, 0.1}

	for b.Loop() {
		Intersects(capsule, mgl64.Vec3{}, box, pos)
		Intersects(capsule, mgl64.Vec3{}, capsule, pos)
	}
}
