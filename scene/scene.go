package scene

import (
	"fmt"

	"github.com/akmonengine/impact"
	"github.com/akmonengine/impact/actor"
	"github.com/akmonengine/impact/movement"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Scene is a built configuration: the engine, one transform per body and
// the movers driving some of them.
type Scene struct {
	Engine     *impact.Engine
	Transforms map[string]*actor.Transform
	Movers     []*movement.Mover
}

// Build validates the whole configuration before registering anything, so
// an invalid file never reaches the engine preconditions.
func (c *Config) Build(sink impact.StatSink, logger *zap.Logger) (*Scene, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bodies, transforms, err := c.buildBodies()
	if err != nil {
		return nil, err
	}

	if err = c.Rules.validate(); err != nil {
		return nil, err
	}

	movers, err := c.buildMovers(transforms)
	if err != nil {
		return nil, err
	}

	engine := impact.NewEngine(sink, impact.WithLogger(logger))
	for _, body := range bodies {
		engine.Register(body)
	}
	for _, rule := range c.Rules.ObjectPairs {
		engine.SetObjectPairRule(rule.Left, rule.Right, rule.CanCollide)
	}
	for _, rule := range c.Rules.ObjectTypes {
		engine.SetObjectTypeRule(rule.Left, rule.Right, rule.CanCollide)
	}
	for _, rule := range c.Rules.TypePairs {
		engine.SetTypePairRule(rule.Left, rule.Right, rule.CanCollide)
	}

	logger.Info("scene built",
		zap.Int("bodies", len(bodies)),
		zap.Int("rules", engine.Rules.Len()),
		zap.Int("movers", len(movers)),
	)

	return &Scene{
		Engine:     engine,
		Transforms: transforms,
		Movers:     movers,
	}, nil
}

func (c *Config) buildBodies() ([]*actor.CollisionBody, map[string]*actor.Transform, error) {
	bodies := make([]*actor.CollisionBody, 0, len(c.Bodies))
	transforms := make(map[string]*actor.Transform, len(c.Bodies))

	for i, bc := range c.Bodies {
		if bc.Id == "" {
			return nil, nil, fmt.Errorf("body %d: %w: id", i, ErrMissingField)
		}
		if _, exists := transforms[bc.Id]; exists {
			return nil, nil, fmt.Errorf("body %s: %w", bc.Id, ErrDuplicateBody)
		}

		position, err := toVector(bc.Position, mgl64.Vec3{})
		if err != nil {
			return nil, nil, fmt.Errorf("body %s position: %w", bc.Id, err)
		}
		shape, err := bc.Shape.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("body %s shape: %w", bc.Id, err)
		}

		transform := actor.NewTransform(position)
		transforms[bc.Id] = transform
		bodies = append(bodies, actor.NewCollisionBody(bc.Id, bc.Type, transform, shape))
	}

	return bodies, transforms, nil
}

func (r RulesConfig) validate() error {
	for _, rule := range r.ObjectPairs {
		if rule.Left == "" || rule.Right == "" {
			return fmt.Errorf("object pair rule: %w: body ids", ErrMissingField)
		}
	}
	for _, rule := range r.ObjectTypes {
		if rule.Left == "" {
			return fmt.Errorf("object type rule: %w: body id", ErrMissingField)
		}
	}

	return nil
}

func (c *Config) buildMovers(transforms map[string]*actor.Transform) ([]*movement.Mover, error) {
	movers := make([]*movement.Mover, 0, len(c.Movers))

	for _, mc := range c.Movers {
		transform, ok := transforms[mc.Target]
		if !ok {
			return nil, fmt.Errorf("mover %q: %w", mc.Target, ErrUnknownTarget)
		}

		emitter, err := mc.emitter()
		if err != nil {
			return nil, fmt.Errorf("mover %s: %w", mc.Target, err)
		}

		mover := movement.NewMover(transform, emitter, movement.WorldFrame{})
		if mc.Speed > 0 {
			mover.Translator.MoveSpeed = mc.Speed
		}
		if mc.RunMultiplier > 0 {
			mover.Translator.RunMultiplier = mc.RunMultiplier
		}
		movers = append(movers, mover)
	}

	return movers, nil
}

func (mc MoverConfig) emitter() (movement.Emitter, error) {
	if len(mc.Held) == 0 {
		return movement.NewPattern(mc.Segment), nil
	}

	actions := make([]movement.Action, 0, len(mc.Held))
	for _, name := range mc.Held {
		action, err := movement.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
		actions = append(actions, action)
	}

	return movement.NewHeld(actions...), nil
}

// Transform returns the position source of a body
func (s *Scene) Transform(id string) (*actor.Transform, bool) {
	transform, ok := s.Transforms[id]

	return transform, ok
}

// Step moves every mover, then runs one collision sweep
func (s *Scene) Step(dt float64) {
	for _, mover := range s.Movers {
		mover.Update(dt)
	}

	s.Engine.Update(dt)
}
