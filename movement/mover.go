package movement

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Movable is a position source that can be displaced, e.g. *actor.Transform
type Movable interface {
	Translate(delta mgl64.Vec3)
}

// Mover advances an emitter and a translator, then applies the result to
// its target. Negligible translations are skipped.
type Mover struct {
	Target     Movable
	Translator *Translator
}

func NewMover(target Movable, emitter Emitter, frame Frame) *Mover {
	return &Mover{
		Target:     target,
		Translator: NewTranslator(emitter, frame),
	}
}

func (m *Mover) Update(dt float64) {
	m.Translator.Emitter.Update(dt)
	m.Translator.Update(dt)

	translation := m.Translator.Translation()
	if translation.LenSqr() <= lengthEpsilon {
		return
	}

	m.Target.Translate(translation)
}
