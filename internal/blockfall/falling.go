package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

var down = core.Pt(0, 1)

type dropRequest int

const (
	dropNone dropRequest = iota
	dropSoft
	dropHard
)

// falling drives the active piece: gravity, sideways movement with held
// repeat, and wall-kicked rotation.
type falling struct {
	base

	fallTime    float64
	controlTime float64

	movement    int
	leftStroke  bool
	rightStroke bool
	leftHeld    bool
	rightHeld   bool

	rotateLeft  bool
	rotateRight bool

	drop     dropRequest
	dropping bool
	// forceStep makes the next update take a gravity step immediately.
	forceStep bool
}

func newFalling() *falling {
	return &falling{}
}

// gravity advances the fall timer and, when a step is due, moves the piece
// down or locks it.
func (f *falling) gravity(s *Session, dt float64) (directive, bool) {
	step := f.forceStep
	f.forceStep = false

	f.fallTime += dt
	interval := s.timing.Fall / s.SpeedMultiplier()
	if f.fallTime >= interval {
		f.fallTime -= interval
		step = true
	}
	if !step || s.Active.Move(&s.Grid, down) {
		return hold(), false
	}
	return lockPiece(s), true
}

// lockPiece ends the session when the piece cannot leave the spawn row,
// otherwise merges it and starts line clearing.
func lockPiece(s *Session) directive {
	if s.Active.Pivot.Y <= SpawnPoint.Y {
		s.logger.Debug("spawn blocked", "kind", s.Active.Kind, "pivot", s.Active.Pivot)
		return pop()
	}
	s.Active.Lock(&s.Grid)
	s.Pieces++
	s.logger.Debug("piece locked", "kind", s.Active.Kind, "pivot", s.Active.Pivot)
	return push(newLineClearing())
}

func (f *falling) horizontal(s *Session, dt float64) {
	if f.leftStroke || f.rightStroke {
		dx := 0
		if f.leftStroke {
			dx--
		}
		if f.rightStroke {
			dx++
		}
		f.leftStroke, f.rightStroke = false, false
		f.controlTime = 0
		if dx != 0 {
			s.Active.Move(&s.Grid, core.Pt(dx, 0))
		}
		return
	}

	f.controlTime += dt
	if f.controlTime < s.timing.Control {
		return
	}
	f.controlTime -= s.timing.Control
	if f.movement != 0 {
		s.Active.Move(&s.Grid, core.Pt(f.movement, 0))
	}
}

func (f *falling) rotation(s *Session) {
	to := s.Active.Rotation
	if f.rotateLeft {
		to = RotateLeft(s.Active.Rotation)
	}
	if f.rotateRight {
		to = RotateRight(s.Active.Rotation)
	}
	f.rotateLeft, f.rotateRight = false, false
	if to != s.Active.Rotation {
		s.Active.Rotate(&s.Grid, to)
	}
}

func (f *falling) Update(s *Session, dt float64) directive {
	if d, locked := f.gravity(s, dt); locked {
		return d
	}

	if f.drop != dropNone {
		soft := f.drop == dropSoft
		f.drop = dropNone
		f.dropping = true
		return push(newFastFall(soft))
	}

	f.horizontal(s, dt)
	f.rotation(s)
	return hold()
}

func (f *falling) HandleInput(_ *Session, ev core.InputEvent) {
	switch ev.Key {
	case core.KeyLeft:
		if ev.Pressed {
			if !f.leftHeld {
				f.movement--
				f.leftStroke = true
				f.leftHeld = true
			}
		} else {
			f.movement = 0
			f.leftHeld = false
		}
	case core.KeyRight:
		if ev.Pressed {
			if !f.rightHeld {
				f.movement++
				f.rightStroke = true
				f.rightHeld = true
			}
		} else {
			f.movement = 0
			f.rightHeld = false
		}
	case core.KeyRotateCCW:
		if ev.Pressed {
			f.rotateLeft = true
		}
	case core.KeyRotateCW:
		if ev.Pressed {
			f.rotateRight = true
		}
	case core.KeySoftDrop:
		if ev.Pressed {
			f.drop = dropSoft
		}
	case core.KeyHardDrop:
		if ev.Pressed {
			f.drop = dropHard
		}
	}
}

// Resume runs after a fast fall, a finished line clear, or a pause. Key
// releases may have gone to another state meanwhile.
func (f *falling) Resume(s *Session) {
	f.movement = 0
	f.leftStroke, f.rightStroke = false, false
	f.leftHeld, f.rightHeld = false, false
	f.rotateLeft, f.rotateRight = false, false
	f.drop = dropNone

	if f.dropping {
		f.dropping = false
		f.forceStep = !s.Grid.Fits(s.Active.Shape(), s.Active.Pivot.Add(down))
	}
}

func (f *falling) Render(s *Session, fr *Frame) {
	fr.drawActive(s)
}

// fastFall repeats gravity at a short interval until the piece lands. A
// soft drop also ends when its key is released.
type fastFall struct {
	base
	soft     bool
	released bool
	fallTime float64
}

func newFastFall(soft bool) *fastFall {
	return &fastFall{soft: soft}
}

func (ff *fastFall) HandleInput(_ *Session, ev core.InputEvent) {
	if ff.soft && ev.IsRelease(core.KeySoftDrop) {
		ff.released = true
	}
}

// Resume ends a soft drop: its key release may have gone to the pause
// screen. A hard drop carries on.
func (ff *fastFall) Resume(*Session) {
	if ff.soft {
		ff.released = true
	}
}

func (ff *fastFall) Update(s *Session, dt float64) directive {
	if ff.released {
		return pop()
	}
	ff.fallTime += dt
	interval := s.timing.FastFall / s.SpeedMultiplier()
	for ff.fallTime >= interval {
		ff.fallTime -= interval
		if !s.Active.Move(&s.Grid, down) {
			return pop()
		}
	}
	return hold()
}

func (ff *fastFall) Render(s *Session, fr *Frame) {
	fr.drawActive(s)
}
