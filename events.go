package impact

import (
	"github.com/akmonengine/impact/actor"
)

// CollisionEventDetails describes one intersecting pair. Left and right
// follow the sweep order of the bodies, not the canonical key order.
type CollisionEventDetails struct {
	LeftObjectId  string
	RightObjectId string
	LeftType      string
	RightType     string
}

func newCollisionEventDetails(a, b *actor.CollisionBody) CollisionEventDetails {
	return CollisionEventDetails{
		LeftObjectId:  a.Id,
		RightObjectId: b.Id,
		LeftType:      a.Type,
		RightType:     b.Type,
	}
}

// Listener - callback for collision events
type Listener func(details CollisionEventDetails)

// Events manager: three registries keyed like the rule tables.
// Listeners are never removed.
type Events struct {
	objectPair map[pairKey][]Listener
	objectType map[pairKey][]Listener
	typePair   map[pairKey][]Listener
}

func NewEvents() Events {
	return Events{
		objectPair: make(map[pairKey][]Listener),
		objectType: make(map[pairKey][]Listener),
		typePair:   make(map[pairKey][]Listener),
	}
}

// SubscribeObjectPair adds a listener for collisions between two bodies
func (e *Events) SubscribeObjectPair(idA, idB string, listener Listener) {
	key := makePairKey(idA, idB)
	e.objectPair[key] = append(e.objectPair[key], listener)
}

// SubscribeObjectType adds a listener for collisions between a body and any body of a type
func (e *Events) SubscribeObjectType(objectId, bodyType string, listener Listener) {
	key := makeObjectTypeKey(objectId, bodyType)
	e.objectType[key] = append(e.objectType[key], listener)
}

// SubscribeTypePair adds a listener for collisions between two types
func (e *Events) SubscribeTypePair(typeA, typeB string, listener Listener) {
	key := makePairKey(typeA, typeB)
	e.typePair[key] = append(e.typePair[key], listener)
}

// dispatch invokes every listener matching the pair and returns how many ran.
// Order: object-pair, object-type (a, b.Type), object-type (b, a.Type),
// type-pair; registration order within a key. Panics are not recovered.
func (e *Events) dispatch(a, b *actor.CollisionBody) int {
	details := newCollisionEventDetails(a, b)
	count := 0

	fire := func(listeners []Listener) {
		for _, listener := range listeners {
			listener(details)
			count++
		}
	}

	fire(e.objectPair[makePairKey(a.Id, b.Id)])

	keyA := makeObjectTypeKey(a.Id, b.Type)
	keyB := makeObjectTypeKey(b.Id, a.Type)
	fire(e.objectType[keyA])
	if keyB != keyA {
		fire(e.objectType[keyB])
	}

	fire(e.typePair[makePairKey(a.Type, b.Type)])

	return count
}
