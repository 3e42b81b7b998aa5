package rpanet_test

import (
	"fmt"

	"github.com/katalvlaran/rpanet/rpanet"
)

// ExampleEngine_Run grows a network where every edge joins two new nodes, so
// the counts do not depend on random draws.
func ExampleEngine_Run() {
	seed, _ := rpanet.SeedFromEdges(2, []rpanet.Edge{{Source: 0, Target: 1, Weight: 1}})
	eng, err := rpanet.New(seed,
		rpanet.WithSeed(42),
		rpanet.WithScenario(0, 0, 0, 1),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := eng.Run([]int{3, 2})

	fmt.Println("nodes:", res.NodeCount())
	fmt.Println("edges:", res.EdgeCount())
	fmt.Println("realized:", res.Realized)

	// Output:
	// nodes: 12
	// edges: 6
	// realized: [3 2]
}

// ExampleEngine_Run_exhaustion shows a step truncated by global uniqueness:
// three seed nodes can serve as distinct targets only three times.
func ExampleEngine_Run_exhaustion() {
	seed := rpanet.Seed{
		OutWeight: []float64{1, 1, 1},
		InWeight:  []float64{1, 1, 1},
	}
	eng, _ := rpanet.New(seed,
		rpanet.WithSeed(1),
		rpanet.WithScenario(1, 0, 0, 0),
		rpanet.WithUniqueness(rpanet.UniqueGlobal),
	)
	res, _ := eng.Run([]int{10})

	x := res.Exhaustions[0]
	fmt.Println("realized:", res.Realized[0])
	fmt.Printf("step %d: %d of %d (%s)\n", x.Step, x.Placed, x.Requested, x.Reason)

	// Output:
	// realized: 3
	// step 0: 3 of 10 (unique nodes exhausted)
}
