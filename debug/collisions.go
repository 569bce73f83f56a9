package debug

import (
	"fmt"
	"slices"

	"github.com/akmonengine/impact"
)

// LogCollisions writes every collision of engine to log, through one type
// pair listener per pair of types registered so far. Bodies registered
// afterwards with a new type are not covered.
func LogCollisions(engine *impact.Engine, log *Log) {
	var types []string
	for _, body := range engine.Bodies() {
		if !slices.Contains(types, body.Type) {
			types = append(types, body.Type)
		}
	}

	listener := func(details impact.CollisionEventDetails) {
		log.Log(fmt.Sprintf("Collision: %s <-> %s", details.LeftObjectId, details.RightObjectId))
	}
	for i, typeA := range types {
		for _, typeB := range types[i:] {
			engine.AddTypePairListener(typeA, typeB, listener)
		}
	}
}
