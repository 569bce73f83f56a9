// Package impact detects intersections between registered bodies once per
// tick, filters candidate pairs through object and type rules, and reports
// the result to a stat sink and to collision listeners.
package impact

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/akmonengine/impact/actor"
	"go.uber.org/zap"
)

// Stat keys published once per Update
const (
	StatCollisionCount = "Collision Count"
	StatLastCollision  = "Last Collision"

	// NoCollision is the Last Collision value of a tick without collisions
	NoCollision = "none"
)

// StatSink receives the per tick statistics, e.g. a debug overlay
type StatSink func(key, value string)

// Stats are the counters of the last Update
type Stats struct {
	CollisionCount int
	LastCollision  string
	// Listener invocations during the last Update
	Dispatched int
}

type Option func(*Engine)

// WithLogger sets the structured logger, zap.NewNop() by default
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine owns the registered bodies, the rule tables and the listeners,
// and sweeps every pair once per Update.
// It is single threaded: configure it before the update loop starts.
type Engine struct {
	bodies []*actor.CollisionBody
	ids    map[string]struct{}

	Rules  Rules
	Events Events

	setStat StatSink
	logger  *zap.Logger
	stats   Stats
}

// NewEngine creates an engine publishing its stats to setStat, which may be nil
func NewEngine(setStat StatSink, opts ...Option) *Engine {
	e := &Engine{
		ids:     make(map[string]struct{}),
		Rules:   NewRules(),
		Events:  NewEvents(),
		setStat: setStat,
		logger:  zap.NewNop(),
		stats:   Stats{LastCollision: NoCollision},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Register appends a body. It panics with ErrInvalidBody if a required
// field is missing. Duplicate ids are accepted and only logged.
func (e *Engine) Register(body *actor.CollisionBody) {
	if err := body.Validate(); err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidBody, err))
	}

	if _, exists := e.ids[body.Id]; exists {
		e.logger.Warn("duplicate collision body id, rule lookups become ambiguous",
			zap.String("id", body.Id),
			zap.String("type", body.Type),
		)
	}
	e.ids[body.Id] = struct{}{}

	e.bodies = append(e.bodies, body)

	e.logger.Debug("collision body registered",
		zap.String("id", body.Id),
		zap.String("type", body.Type),
		zap.Stringer("shape", body.Shape.GetType()),
	)
}

// Bodies returns the registered bodies in registration order
func (e *Engine) Bodies() []*actor.CollisionBody {
	return slices.Clone(e.bodies)
}

// SetObjectPairRule allows or forbids collisions between two bodies, in either order
func (e *Engine) SetObjectPairRule(idA, idB string, canCollide bool) {
	requireId(idA, idB)
	e.Rules.SetObjectPair(idA, idB, canCollide)
	e.logRule(TierObjectPair, idA, idB, canCollide)
}

// SetObjectTypeRule allows or forbids collisions between a body and every body of a type
func (e *Engine) SetObjectTypeRule(objectId, bodyType string, canCollide bool) {
	requireId(objectId)
	e.Rules.SetObjectType(objectId, bodyType, canCollide)
	e.logRule(TierObjectType, objectId, bodyType, canCollide)
}

// SetTypePairRule allows or forbids collisions between two body types, in either order
func (e *Engine) SetTypePairRule(typeA, typeB string, canCollide bool) {
	e.Rules.SetTypePair(typeA, typeB, canCollide)
	e.logRule(TierTypePair, typeA, typeB, canCollide)
}

// AddObjectPairListener is called for every collision between two bodies
func (e *Engine) AddObjectPairListener(idA, idB string, listener Listener) {
	requireId(idA, idB)
	requireListener(listener)
	e.Events.SubscribeObjectPair(idA, idB, listener)
}

// AddObjectTypeListener is called for every collision between a body and a body of a type
func (e *Engine) AddObjectTypeListener(objectId, bodyType string, listener Listener) {
	requireId(objectId)
	requireListener(listener)
	e.Events.SubscribeObjectType(objectId, bodyType, listener)
}

// AddTypePairListener is called for every collision between bodies of two types
func (e *Engine) AddTypePairListener(typeA, typeB string, listener Listener) {
	requireListener(listener)
	e.Events.SubscribeTypePair(typeA, typeB, listener)
}

// CanCollide resolves the rule tables for a pair of bodies
func (e *Engine) CanCollide(a, b *actor.CollisionBody) bool {
	return e.Rules.CanCollide(a, b)
}

// Stats returns the counters of the last Update
func (e *Engine) Stats() Stats {
	return e.stats
}

// Update runs the sweep once. Listeners run inline, in sweep order; a
// panicking listener aborts the sweep and no stats are published.
func (e *Engine) Update(dt float64) {
	stats := Stats{LastCollision: NoCollision}

	for pair := range BroadPhase(e.bodies) {
		if !NarrowPhase(&e.Rules, pair) {
			continue
		}

		stats.CollisionCount++
		stats.LastCollision = pair.Label()

		e.logger.Debug("collision",
			zap.String("left", pair.BodyA.Id),
			zap.String("right", pair.BodyB.Id),
			zap.String("leftType", pair.BodyA.Type),
			zap.String("rightType", pair.BodyB.Type),
		)

		stats.Dispatched += e.Events.dispatch(pair.BodyA, pair.BodyB)
	}

	e.stats = stats
	e.publish(StatCollisionCount, strconv.Itoa(stats.CollisionCount))
	e.publish(StatLastCollision, stats.LastCollision)

	e.logger.Debug("collision sweep",
		zap.Float64("dt", dt),
		zap.Int("bodies", len(e.bodies)),
		zap.Int("collisions", stats.CollisionCount),
		zap.Int("dispatched", stats.Dispatched),
	)
}

func (e *Engine) publish(key, value string) {
	if e.setStat != nil {
		e.setStat(key, value)
	}
}

func (e *Engine) logRule(tier RuleTier, left, right string, canCollide bool) {
	e.logger.Debug("collision rule set",
		zap.Stringer("tier", tier),
		zap.String("left", left),
		zap.String("right", right),
		zap.Bool("canCollide", canCollide),
	)
}

func requireId(ids ...string) {
	for _, id := range ids {
		if id == "" {
			panic(fmt.Errorf("%w: object id is empty", ErrInvalidRule))
		}
	}
}

func requireListener(listener Listener) {
	if listener == nil {
		panic(ErrNilListener)
	}
}
