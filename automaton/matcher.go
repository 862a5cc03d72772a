package automaton

// Matcher is the streaming form of the automaton. The zero value is ready to
// use and sits in Start.
type Matcher struct {
	state State
	fed   int
}

// Reset puts the matcher back into Start.
func (m *Matcher) Reset() {
	m.state = Start
	m.fed = 0
}

// Feed consumes one rune and returns the new current state.
func (m *Matcher) Feed(r rune) State {
	m.state = Next(m.state, r)
	m.fed++
	return m.state
}

// State returns the current state.
func (m *Matcher) State() State { return m.state }

// Fed returns the number of runes consumed since the last Reset.
func (m *Matcher) Fed() int { return m.fed }

// Accepted returns true if the runes fed so far form an accepted word.
func (m *Matcher) Accepted() bool { return m.state == Accept }

// Trapped returns true once no continuation can be accepted.
func (m *Matcher) Trapped() bool { return m.state == Reject }
