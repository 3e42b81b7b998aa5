package rpanet_test

import (
	"testing"

	"github.com/katalvlaran/rpanet/rpanet"
)

func benchRun(b *testing.B, kind rpanet.SamplerKind) {
	seed := rpanet.Seed{OutWeight: []float64{1, 1}, InWeight: []float64{1, 1}}
	steps := make([]int, 1000)
	for i := range steps {
		steps[i] = 20
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng, err := rpanet.New(seed,
			rpanet.WithSeed(int64(i)),
			rpanet.WithScenario(0.2, 0.6, 0.15, 0.05),
			rpanet.WithSampler(kind),
		)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := eng.Run(steps); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_RunTree(b *testing.B)   { benchRun(b, rpanet.SamplerTree) }
func BenchmarkEngine_RunLinear(b *testing.B) { benchRun(b, rpanet.SamplerLinear) }
