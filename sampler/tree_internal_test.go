package sampler

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rpanet/preference"
)

// identity uses the strengths themselves as preferences.
var identity = preference.Custom(
	func(out, _ float64) float64 { return out },
	func(_, in float64) float64 { return in },
)

// aggregatesHold checks total[i] == pref[i] + children for every slot.
func aggregatesHold(t *Tree, role Role) bool {
	pref, total := t.pref[role], t.total[role]
	n := len(pref)
	for i := range n {
		want := pref[i]
		if l := 2*i + 1; l < n {
			want += total[l]
			if l+1 < n {
				want += total[l+1]
			}
		}
		if diff := want - total[i]; diff > 1e-9*(1+want) || diff < -1e-9*(1+want) {
			return false
		}
	}
	return true
}

func TestTree_AggregateInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("every slot aggregates its subtree", prop.ForAll(
		func(weights []float64, seed int64) bool {
			tr := NewTree(identity, 0)
			rng := rand.New(rand.NewSource(seed))
			for _, w := range weights {
				id := tr.Insert()
				tr.SetWeights(id, w, w/2)
				// random re-weight of an earlier node
				j := rng.Intn(tr.Len())
				tr.SetWeights(j, tr.Preference(j, Source)+1, tr.Preference(j, Target)+0.5)
			}
			return aggregatesHold(tr, Source) && aggregatesHold(tr, Target)
		},
		gen.SliceOf(gen.Float64Range(0, 1000)),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestTree_DescendClampsDrift(t *testing.T) {
	tr := NewTree(identity, 4)
	for range 3 {
		tr.Insert()
	}
	tr.SetWeights(0, 1, 1)
	tr.SetWeights(1, 2, 2)
	tr.SetWeights(2, 0, 0)

	// A weight above the root total is clamped and lands on a positive node.
	id := tr.descend(Source, 10)
	assert.Contains(t, []int{0, 1}, id)
	assert.Equal(t, uint64(1), tr.Stats().Clamps)
}
