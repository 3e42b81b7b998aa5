package preference_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rpanet/preference"
)

func TestParams_Eval(t *testing.T) {
	tests := []struct {
		name    string
		p       preference.Params
		out, in float64
		want    float64
	}{
		{"linear source", preference.Params{1, 1, 0, 0, 1}, 3, 7, 4},
		{"linear target", preference.Params{0, 0, 1, 1, 1}, 3, 7, 8},
		{"sublinear", preference.Params{2, 0.5, 0, 0, 0}, 9, 0, 6},
		{"zero strength exponent zero", preference.Params{1, 0, 1, 0, 0}, 0, 0, 2},
		{"mixed", preference.Params{1, 2, 3, 1, 0.5}, 2, 4, 4 + 12 + 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.p.Eval(tc.out, tc.in), 1e-12)
			assert.InDelta(t, tc.want, tc.p.Func()(tc.out, tc.in), 1e-12)
		})
	}
}

func TestModel_DefaultAndParametric(t *testing.T) {
	m := preference.Default()
	assert.True(t, m.Valid())

	s, tg := m.Eval(5, 2)
	assert.Equal(t, 6.0, s)
	assert.Equal(t, 3.0, tg)
	assert.Equal(t, s, m.Source(5, 2))
	assert.Equal(t, tg, m.Target(5, 2))

	assert.False(t, preference.Model{}.Valid())
}

func TestModel_Custom(t *testing.T) {
	m := preference.Custom(
		func(out, in float64) float64 { return math.Log1p(out) + 1 },
		func(out, in float64) float64 { return in * in },
	)
	s, tg := m.Eval(math.E-1, 3)
	assert.InDelta(t, 2.0, s, 1e-12)
	assert.Equal(t, 9.0, tg)

	assert.Panics(t, func() { preference.Custom(nil, m.Target) })
	assert.Panics(t, func() { preference.Custom(m.Source, nil) })
}
