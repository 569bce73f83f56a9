package impact

import (
	"github.com/akmonengine/impact/actor"
)

// RuleTier identifies which table decided a CanCollide query
type RuleTier uint8

const (
	TierObjectPair RuleTier = iota
	TierObjectType
	TierTypePair
	TierDefault
)

func (t RuleTier) String() string {
	switch t {
	case TierObjectPair:
		return "object-pair"
	case TierObjectType:
		return "object-type"
	case TierTypePair:
		return "type-pair"
	case TierDefault:
		return "default"
	}
	return "unknown"
}

type pairKey struct {
	left  string
	right string
}

// makePairKey creates a normalized pair key with ordinal ordering
func makePairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{left: a, right: b}
}

// makeObjectTypeKey keeps role order: the id and the type come from
// different namespaces, so (id, type) is already unique
func makeObjectTypeKey(objectId, bodyType string) pairKey {
	return pairKey{left: objectId, right: bodyType}
}

// Rules holds the three override tables. Later writes to the same key win.
type Rules struct {
	objectPair map[pairKey]bool
	objectType map[pairKey]bool
	typePair   map[pairKey]bool
}

func NewRules() Rules {
	return Rules{
		objectPair: make(map[pairKey]bool),
		objectType: make(map[pairKey]bool),
		typePair:   make(map[pairKey]bool),
	}
}

func (r *Rules) SetObjectPair(idA, idB string, canCollide bool) {
	r.objectPair[makePairKey(idA, idB)] = canCollide
}

func (r *Rules) SetObjectType(objectId, bodyType string, canCollide bool) {
	r.objectType[makeObjectTypeKey(objectId, bodyType)] = canCollide
}

func (r *Rules) SetTypePair(typeA, typeB string, canCollide bool) {
	r.typePair[makePairKey(typeA, typeB)] = canCollide
}

// Len returns the number of stored rules across all tables
func (r *Rules) Len() int {
	return len(r.objectPair) + len(r.objectType) + len(r.typePair)
}

type ruleLookup struct {
	tier  RuleTier
	table map[pairKey]bool
	key   pairKey
}

// Resolve walks the tiers in precedence order and returns the first
// stored answer, or true with TierDefault when nothing matches.
// The object-type tier tries (a.Id, b.Type) before (b.Id, a.Type).
func (r *Rules) Resolve(a, b *actor.CollisionBody) (bool, RuleTier) {
	lookups := [...]ruleLookup{
		{TierObjectPair, r.objectPair, makePairKey(a.Id, b.Id)},
		{TierObjectType, r.objectType, makeObjectTypeKey(a.Id, b.Type)},
		{TierObjectType, r.objectType, makeObjectTypeKey(b.Id, a.Type)},
		{TierTypePair, r.typePair, makePairKey(a.Type, b.Type)},
	}

	for _, lookup := range lookups {
		if canCollide, ok := lookup.table[lookup.key]; ok {
			return canCollide, lookup.tier
		}
	}

	return true, TierDefault
}

// CanCollide reports whether the pair is eligible for intersection tests
func (r *Rules) CanCollide(a, b *actor.CollisionBody) bool {
	canCollide, _ := r.Resolve(a, b)

	return canCollide
}
