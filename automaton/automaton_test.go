package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"", false},
		{"ac", true},
		{"aabcc", true},
		{"aabcabcc", true},
		{"aabc", false},
		{"aabca bc", false},
		{"b", false},
		{"c", false},
		{"a", false},
		{"acc", false},
		{"aabcc ", false},
		{"aabbc", false},
		{"AC", false},
		{"aäc", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Accepts(c.word), "Accepts(%q)", c.word)
	}
}

func TestNext_TransitionTable(t *testing.T) {
	table := map[State][4]State{
		// 'a', 'b', 'c', other
		Start:     {AfterA, Reject, Reject, Reject},
		AfterA:    {InBlockA, Reject, Accept, Reject},
		InBlockA:  {Reject, InBlockAB, Reject, Reject},
		InBlockAB: {Reject, Reject, AfterA, Reject},
		Accept:    {Reject, Reject, Reject, Reject},
		Reject:    {Reject, Reject, Reject, Reject},
	}
	inputs := [4]rune{'a', 'b', 'c', 'x'}
	for from, row := range table {
		for i, r := range inputs {
			assert.Equal(t, row[i], Next(from, r), "Next(%v, %q)", from, r)
		}
	}
}

func TestRun_StopsAtTrap(t *testing.T) {
	final, consumed := Run("abxxxx")
	assert.Equal(t, Reject, final)
	assert.Equal(t, 2, consumed)

	final, consumed = Run("aabcc")
	assert.Equal(t, Accept, final)
	assert.Equal(t, 5, consumed)

	final, consumed = Run("")
	assert.Equal(t, Start, final)
	assert.Zero(t, consumed)
}

// Feeding every rune, without stopping at the trap, must agree with Accepts.
func TestMatcher_AgreesWithAccepts(t *testing.T) {
	words := []string{"", "ac", "aabcc", "aabc", "acx", "xac", "aabcabcabcc", "aabcacc", "acac"}
	var m Matcher
	for _, w := range words {
		m.Reset()
		for _, r := range w {
			m.Feed(r)
		}
		assert.Equal(t, Accepts(w), m.Accepted(), "word %q", w)
	}
}

func TestMatcher_TrapIsAbsorbing(t *testing.T) {
	var m Matcher
	require.Equal(t, Start, m.State())

	m.Feed('b')
	require.True(t, m.Trapped())
	for _, r := range "ac" {
		assert.Equal(t, Reject, m.Feed(r))
	}
	assert.False(t, m.Accepted())
	assert.Equal(t, 3, m.Fed())

	m.Reset()
	assert.Equal(t, Start, m.State())
	assert.Zero(t, m.Fed())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "InBlockAB", InBlockAB.String())
	assert.Equal(t, "UNKNOWN STATE", State(42).String())
}
