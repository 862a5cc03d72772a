// Package automaton implements a deterministic finite automaton recognising
// words of the form a(abc)*c.
package automaton

// State is a state of the automaton. Exactly one state is current at a time.
type State uint8

const (
	Start     State = iota // nothing consumed yet
	AfterA                 // leading a, or a completed abc block
	InBlockA               // a of an abc block
	InBlockAB              // ab of an abc block
	Accept                 // final c consumed
	Reject                 // trap state, absorbing
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case AfterA:
		return "AfterA"
	case InBlockA:
		return "InBlockA"
	case InBlockAB:
		return "InBlockAB"
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	}
	return "UNKNOWN STATE"
}

// Next is the transition function. It is total: every (state, rune) pair
// that has no explicit transition goes to Reject, and Reject never leaves.
func Next(s State, r rune) State {
	switch s {
	case Start:
		if r == 'a' {
			return AfterA
		}
	case AfterA:
		switch r {
		case 'a':
			return InBlockA
		case 'c':
			return Accept
		}
	case InBlockA:
		if r == 'b' {
			return InBlockAB
		}
	case InBlockAB:
		if r == 'c' {
			return AfterA
		}
	}
	return Reject
}

// Run feeds word through the automaton from Start and returns the final state
// together with the number of runes consumed. Consumption stops as soon as the
// automaton is trapped in Reject.
func Run(word string) (final State, consumed int) {
	final = Start
	for _, r := range word {
		final = Next(final, r)
		consumed++
		if final == Reject {
			break
		}
	}
	return final, consumed
}

// Accepts returns true if word is in the language a(abc)*c.
func Accepts(word string) bool {
	final, _ := Run(word)
	return final == Accept
}
