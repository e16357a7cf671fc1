package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/statemachine"
)

// State is a gameplay phase on the state stack.
type State = statemachine.State[*Session, *Frame]

type (
	machine   = statemachine.Machine[*Session, *Frame]
	directive = statemachine.Directive[*Session, *Frame]
	base      = statemachine.Base[*Session, *Frame]
)

func hold() directive              { return statemachine.Hold[*Session, *Frame]() }
func push(s State) directive       { return statemachine.Push(s) }
func transition(s State) directive { return statemachine.Transition(s) }
func pop() directive               { return statemachine.Pop[*Session, *Frame]() }

func newMachine(initial State) *machine {
	return statemachine.New(initial)
}
