package reciprocity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rpanet/reciprocity"
)

func TestNew_Shapes(t *testing.T) {
	_, err := reciprocity.New(nil, nil, false)
	assert.ErrorIs(t, err, reciprocity.ErrEmptyGroups)

	_, err = reciprocity.New([]float64{0.5, 0.5}, [][]float64{{1, 1}}, false)
	assert.ErrorIs(t, err, reciprocity.ErrMatrixShape)

	_, err = reciprocity.New([]float64{0.5, 0.5}, [][]float64{{1, 1}, {1}}, false)
	assert.ErrorIs(t, err, reciprocity.ErrMatrixShape)

	s, err := reciprocity.New([]float64{0.5, 0.5}, [][]float64{{1, 0}, {0, 1}}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Groups())
}

func TestSampleGroup_Frequencies(t *testing.T) {
	probs := []float64{0.2, 0.5, 0.3}
	s, err := reciprocity.New(probs, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, false)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	const draws = 100000
	counts := make([]int, len(probs))
	for range draws {
		counts[s.SampleGroup(rng)]++
	}
	for i, p := range probs {
		assert.InDelta(t, p, float64(counts[i])/draws, 0.01)
	}
}

func TestSampleGroup_RoundingFallsToLast(t *testing.T) {
	// The vector sums below one; any draw past the sum lands on the last group.
	s, err := reciprocity.New([]float64{0.1, 0.1}, [][]float64{{0, 0}, {0, 0}}, false)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(9))
	seenLast := false
	for range 1000 {
		if s.SampleGroup(rng) == 1 {
			seenLast = true
		}
	}
	assert.True(t, seenLast)
}

func TestReciprocate(t *testing.T) {
	ones := [][]float64{{1, 1}, {1, 1}}
	zeros := [][]float64{{0, 0}, {0, 0}}
	rng := rand.New(rand.NewSource(1))

	all, err := reciprocity.New([]float64{0.5, 0.5}, ones, false)
	require.NoError(t, err)
	none, err := reciprocity.New([]float64{0.5, 0.5}, zeros, false)
	require.NoError(t, err)
	loops, err := reciprocity.New([]float64{0.5, 0.5}, ones, true)
	require.NoError(t, err)

	for range 100 {
		assert.True(t, all.Reciprocate(rng, 1, 2, 0, 1))
		assert.False(t, none.Reciprocate(rng, 1, 2, 0, 1))
	}
	assert.False(t, all.Reciprocate(rng, 3, 3, 1, 1), "self-loop without opt-in")
	assert.True(t, loops.Reciprocate(rng, 3, 3, 1, 1), "self-loop with opt-in")
	assert.False(t, all.Reciprocate(rng, 1, 2, reciprocity.NoGroup, 1), "unlabelled endpoint")
}

func TestReciprocate_UsesTargetRowSourceColumn(t *testing.T) {
	// Only group 1 targets reciprocate towards group 0 sources.
	m := [][]float64{{0, 0}, {1, 0}}
	s, err := reciprocity.New([]float64{0.5, 0.5}, m, false)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))

	assert.True(t, s.Reciprocate(rng, 0, 1, 0, 1))
	assert.False(t, s.Reciprocate(rng, 0, 1, 1, 0))
}

func TestReciprocate_SelfLoopConsumesNoDraw(t *testing.T) {
	s, err := reciprocity.New([]float64{1}, [][]float64{{0.5}}, false)
	require.NoError(t, err)

	a := rand.New(rand.NewSource(4))
	b := rand.New(rand.NewSource(4))
	s.Reciprocate(a, 7, 7, 0, 0)
	assert.Equal(t, a.Int63(), b.Int63())
}
