// Package statemachine implements a stack of behavior units that share one
// exclusively-borrowed data value. Only the top of the stack is updated and
// receives input; every element gets a background render pass.
//
// The package knows nothing about the game it drives. D is the mutable
// data handed to each state call, F is the render target.
package statemachine

import (
	"github.com/vovakirdan/blockfall/internal/core"
)

// State is a single behavior unit on the stack.
type State[D, F any] interface {
	// Update advances the state by dt seconds and returns the directive the
	// machine applies after the call returns.
	Update(data D, dt float64) Directive[D, F]

	// HandleInput receives one discrete key transition. State changes
	// requested from input are deferred to the next Update.
	HandleInput(data D, ev core.InputEvent)

	// Render draws the state. Called on the top state only.
	Render(data D, dst F)

	// BackgroundRender is called on every stack element, bottom to top,
	// before the top state's Render.
	BackgroundRender(data D, dst F)

	// Enter is called when the state is pushed or transitioned to.
	Enter(data D)

	// Exit is called when the state is popped or transitioned away from.
	Exit(data D)

	// Pause is reserved for states that want to be told they were covered.
	// The machine itself never calls it on Push.
	Pause(data D)

	// Resume is called on the new top after a Pop.
	Resume(data D)
}

// Base provides no-op bodies for the optional hooks. Embed it and override
// what the state needs.
type Base[D, F any] struct{}

func (Base[D, F]) HandleInput(D, core.InputEvent) {}
func (Base[D, F]) Render(D, F)                    {}
func (Base[D, F]) BackgroundRender(D, F)          {}
func (Base[D, F]) Enter(D)                        {}
func (Base[D, F]) Exit(D)                         {}
func (Base[D, F]) Pause(D)                        {}
func (Base[D, F]) Resume(D)                       {}

// Op identifies a stack operation.
type Op int

const (
	OpHold Op = iota
	OpPush
	OpTransition
	OpPop
)

func (o Op) String() string {
	switch o {
	case OpHold:
		return "hold"
	case OpPush:
		return "push"
	case OpTransition:
		return "transition"
	case OpPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Directive is the stack operation a state requests from Update.
type Directive[D, F any] struct {
	Op   Op
	Next State[D, F]
}

// Hold leaves the stack unchanged.
func Hold[D, F any]() Directive[D, F] {
	return Directive[D, F]{Op: OpHold}
}

// Push enters s and places it on top.
func Push[D, F any](s State[D, F]) Directive[D, F] {
	return Directive[D, F]{Op: OpPush, Next: s}
}

// Transition replaces the top with s.
func Transition[D, F any](s State[D, F]) Directive[D, F] {
	return Directive[D, F]{Op: OpTransition, Next: s}
}

// Pop removes the top state.
func Pop[D, F any]() Directive[D, F] {
	return Directive[D, F]{Op: OpPop}
}

// Machine is a stack of states. The zero value is not usable; use New.
type Machine[D, F any] struct {
	stack []State[D, F]
}

// New creates a machine holding initial. Enter is not called until Start.
// Panics if initial is nil.
func New[D, F any](initial State[D, F]) *Machine[D, F] {
	if initial == nil {
		panic("statemachine: nil initial state")
	}
	return &Machine[D, F]{stack: []State[D, F]{initial}}
}

// Start calls Enter on the initial state.
func (m *Machine[D, F]) Start(data D) {
	if top := m.Top(); top != nil {
		top.Enter(data)
	}
}

// Depth returns the number of states on the stack.
func (m *Machine[D, F]) Depth() int {
	return len(m.stack)
}

// Running reports whether any state remains.
func (m *Machine[D, F]) Running() bool {
	return len(m.stack) > 0
}

// Top returns the top state, or nil when the stack is empty.
func (m *Machine[D, F]) Top() State[D, F] {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Update runs the top state and applies its directive.
// Returns false once the stack is empty.
func (m *Machine[D, F]) Update(data D, dt float64) bool {
	top := m.Top()
	if top == nil {
		return false
	}
	m.Apply(data, top.Update(data, dt))
	return m.Running()
}

// Apply executes a directive against the stack.
func (m *Machine[D, F]) Apply(data D, d Directive[D, F]) {
	switch d.Op {
	case OpPush:
		d.Next.Enter(data)
		m.stack = append(m.stack, d.Next)

	case OpTransition:
		if top := m.pop(); top != nil {
			top.Exit(data)
		}
		d.Next.Enter(data)
		m.stack = append(m.stack, d.Next)

	case OpPop:
		if top := m.pop(); top != nil {
			top.Exit(data)
		}
		if top := m.Top(); top != nil {
			top.Resume(data)
		}

	case OpHold:
	}
}

func (m *Machine[D, F]) pop() State[D, F] {
	top := m.Top()
	if top == nil {
		return nil
	}
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	return top
}

// HandleInput forwards ev to the top state.
func (m *Machine[D, F]) HandleInput(data D, ev core.InputEvent) {
	if top := m.Top(); top != nil {
		top.HandleInput(data, ev)
	}
}

// Render gives every state a background pass, bottom to top, then renders
// the top state.
func (m *Machine[D, F]) Render(data D, dst F) {
	for _, s := range m.stack {
		s.BackgroundRender(data, dst)
	}
	if top := m.Top(); top != nil {
		top.Render(data, dst)
	}
}
