package searchlab

import (
	"bytes"
	"log"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchlab/game"
	"github.com/searchlab/search"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	conf := DefaultConfig()
	conf.Leaves = conf.Leaves[:31]
	err := conf.Validate()
	require.Error(t, err)
	var cerr *game.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 31, cerr.Leaves)

	conf = Config{Depth: 0}
	err = conf.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
}

func TestNew_RejectsBadLeafCount(t *testing.T) {
	for _, n := range []int{31, 33} {
		conf := DefaultConfig()
		conf.Leaves = make([]int, n)
		a, err := New(conf)
		assert.Nil(t, a)
		require.Error(t, err)

		var cerr *game.ConfigError
		assert.True(t, errors.As(err, &cerr), "%d leaves: %v", n, err)
	}
}

func TestArena_Play(t *testing.T) {
	conf := DefaultConfig()
	conf.Trace = true
	a, err := New(conf)
	require.NoError(t, err)

	var buf bytes.Buffer
	a.SetLogger(log.New(&buf, "", 0))

	r, err := a.Play()
	require.NoError(t, err)

	assert.Equal(t, 5, r.Plain.Value)
	assert.Equal(t, 5, r.Pruned.Value)
	assert.Equal(t, 63, r.Plain.Stats.Visited)
	assert.Equal(t, 51, r.Pruned.Stats.Visited)
	assert.Less(t, r.Pruned.Stats.Visited, r.Plain.Stats.Visited)

	assert.Equal(t, search.Right, r.FirstMove)
	assert.Equal(t, 2, r.Left)
	assert.Equal(t, 5, r.Right)
	assert.Equal(t, 5, r.FirstMoveValue)

	require.NotNil(t, r.Pruned.Trace)
	assert.Equal(t, 12, r.Pruned.Trace.Count(search.Pruned))
	assert.Contains(t, buf.String(), "Alpha-beta pruning: value 5")

	// playing again starts from clean statistics and leaves the first report alone
	first := r
	r, err = a.Play()
	require.NoError(t, err)
	assert.Equal(t, 63, r.Plain.Stats.Visited)
	assert.Len(t, r.Plain.Trace.Nodes(), 63)
	assert.NotSame(t, first.Pruned.Trace, r.Pruned.Trace)
	assert.Len(t, first.Plain.Trace.Nodes(), 63)
	assert.Equal(t, 12, first.Pruned.Trace.Count(search.Pruned))
	assert.Equal(t, 51, first.Pruned.Trace.Count(search.Visited))
}

func TestArena_NoTrace(t *testing.T) {
	a, err := New(DefaultConfig())
	require.NoError(t, err)
	r, err := a.Play()
	require.NoError(t, err)
	assert.Nil(t, r.Plain.Trace)
	assert.Nil(t, r.Pruned.Trace)
}

func TestArena_Name(t *testing.T) {
	a := MakeArena(game.DefaultTree(), "", false)
	assert.Equal(t, "UNKNOWN TREE", a.Name())
	assert.Equal(t, 5, a.Tree().Depth())
}

func TestReport_Log(t *testing.T) {
	a, err := New(DefaultConfig())
	require.NoError(t, err)
	r, err := a.Play()
	require.NoError(t, err)

	var buf bytes.Buffer
	r.Log(&buf)
	out := buf.String()

	assert.Contains(t, out, "Leaves (32): [3, 5, 2, 9, 12,")
	assert.Contains(t, out, "Depth: 5, width: 2")
	assert.Contains(t, out, "=== Plain minimax ===")
	assert.Contains(t, out, "=== Alpha-beta pruning ===")
	assert.Contains(t, out, "Nodes visited: 63")
	assert.Contains(t, out, "Nodes visited: 51")
	assert.Contains(t, out, "left=2, right=5 -> RIGHT subtree, value 5")
}
