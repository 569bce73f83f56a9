package impact

import (
	"iter"

	"github.com/akmonengine/impact/actor"
	"github.com/akmonengine/impact/narrowphase"
)

// Pair - two registered bodies, in sweep order
type Pair struct {
	BodyA *actor.CollisionBody
	BodyB *actor.CollisionBody
}

// Label formats the pair as reported by the Last Collision stat
func (p Pair) Label() string {
	return p.BodyA.Id + " <-> " + p.BodyB.Id
}

// BroadPhase yields every unordered pair of bodies once, by ascending
// indices (i < j). There is no spatial filtering: this is O(n²) and meant
// for small scenes.
func BroadPhase(bodies []*actor.CollisionBody) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				if !yield(Pair{BodyA: bodies[i], BodyB: bodies[j]}) {
					return
				}
			}
		}
	}
}

// NarrowPhase reports whether the pair passes the rules and its shapes
// intersect at the bodies' current positions
func NarrowPhase(rules *Rules, pair Pair) bool {
	if !rules.CanCollide(pair.BodyA, pair.BodyB) {
		return false
	}

	return narrowphase.Intersects(
		pair.BodyA.Shape, pair.BodyA.Position(),
		pair.BodyB.Shape, pair.BodyB.Position(),
	)
}
