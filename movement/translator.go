package movement

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultMoveSpeed     = 4.0
	DefaultRunMultiplier = 2.5

	lengthEpsilon = 1e-6
)

// Frame provides the ground axes movement actions are expressed in
type Frame interface {
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}

// WorldFrame moves along the world axes, forward being -Z
type WorldFrame struct{}

func (WorldFrame) Forward() mgl64.Vec3 { return mgl64.Vec3{0, 0, -1} }
func (WorldFrame) Right() mgl64.Vec3   { return mgl64.Vec3{1, 0, 0} }

// Translator converts the active actions of an emitter into a translation
// for the current tick. Diagonal moves are normalized.
type Translator struct {
	Emitter       Emitter
	Frame         Frame
	MoveSpeed     float64
	RunMultiplier float64

	translation mgl64.Vec3
}

func NewTranslator(emitter Emitter, frame Frame) *Translator {
	return &Translator{
		Emitter:       emitter,
		Frame:         frame,
		MoveSpeed:     DefaultMoveSpeed,
		RunMultiplier: DefaultRunMultiplier,
	}
}

func (t *Translator) Update(dt float64) {
	var move mgl64.Vec3
	forward, right := t.Frame.Forward(), t.Frame.Right()

	if t.Emitter.IsActive(Forward) {
		move = move.Add(forward)
	}
	if t.Emitter.IsActive(Backward) {
		move = move.Sub(forward)
	}
	if t.Emitter.IsActive(Left) {
		move = move.Sub(right)
	}
	if t.Emitter.IsActive(Right) {
		move = move.Add(right)
	}

	if move.LenSqr() > lengthEpsilon {
		move = move.Normalize()
	}

	speed := t.MoveSpeed
	if t.Emitter.IsActive(Run) {
		speed *= t.RunMultiplier
	}

	t.translation = move.Mul(speed * dt)
}

// Translation is the displacement computed by the last Update
func (t *Translator) Translation() mgl64.Vec3 {
	return t.translation
}
