package sampler_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rpanet/preference"
	"github.com/katalvlaran/rpanet/sampler"
)

func benchSample(b *testing.B, s sampler.Sampler, n int) {
	rng := rand.New(rand.NewSource(1))
	for range n {
		id := s.Insert()
		s.SetWeights(id, float64(rng.Intn(100)), float64(rng.Intn(100)))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sample(rng, sampler.Source, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTree_Sample(b *testing.B) {
	for _, n := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			benchSample(b, sampler.NewTree(preference.Default(), n), n)
		})
	}
}

func BenchmarkLinear_Sample(b *testing.B) {
	for _, n := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			benchSample(b, sampler.NewLinear(preference.Default(), n), n)
		})
	}
}

func BenchmarkTree_SetWeights(b *testing.B) {
	const n = 100_000
	t := sampler.NewTree(preference.Default(), n)
	for range n {
		t.Insert()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.SetWeights(i%n, float64(i), float64(i))
	}
}
