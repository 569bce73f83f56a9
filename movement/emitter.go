package movement

// DefaultSegmentDuration is the time spent on each leg of a Pattern, in seconds
const DefaultSegmentDuration = 2.0

// Emitter reports which actions are active for the current tick
type Emitter interface {
	IsActive(action Action) bool
	Update(dt float64)
}

// Pattern walks a square: Right, Forward, Left, Backward, one leg per
// SegmentDuration seconds. It never runs.
type Pattern struct {
	SegmentDuration float64
	timer           float64
}

func NewPattern(segmentDuration float64) *Pattern {
	if segmentDuration <= 0 {
		segmentDuration = DefaultSegmentDuration
	}

	return &Pattern{SegmentDuration: segmentDuration}
}

var patternLegs = [4]Action{Right, Forward, Left, Backward}

func (p *Pattern) IsActive(action Action) bool {
	phase := int(p.timer/p.SegmentDuration) % len(patternLegs)

	return patternLegs[phase] == action
}

func (p *Pattern) Update(dt float64) {
	p.timer += dt
}

// Held keeps a fixed set of actions active, like keys held down
type Held map[Action]bool

func NewHeld(actions ...Action) Held {
	held := make(Held, len(actions))
	for _, action := range actions {
		held[action] = true
	}

	return held
}

func (h Held) IsActive(action Action) bool {
	return h[action]
}

func (h Held) Update(float64) {}
