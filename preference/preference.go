// SPDX-License-Identifier: MIT
// Package: rpanet/preference
//
// preference.go - node preference functions for source and target roles.
//
// Contract:
//   • A preference is a pure function of (out-weight, in-weight).
//   • The built-in form is p0*out^p1 + p2*in^p3 + p4, one parameter set per role.
//   • A custom Func replaces the built-in form wholesale for its role.
//   • Callers supply parameters that keep the result finite and non-negative;
//     nothing here re-validates them.
//
// Complexity: O(1) per evaluation (two math.Pow calls for the built-in form).

// Package preference maps a node's accumulated strength to the weight that
// controls how likely the node is to be drawn as an edge source or target.
package preference

import "math"

// Func computes a preference from a node's out-weight and in-weight.
type Func func(outWeight, inWeight float64) float64

// Params holds the five coefficients of the built-in power-law form:
//
//	pref = Params[0]*out^Params[1] + Params[2]*in^Params[3] + Params[4]
type Params [5]float64

// Eval applies the built-in form to (out, in).
// Note that math.Pow(0, 0) == 1, so a zero-strength node with exponent 0 still
// contributes its coefficient.
func (p Params) Eval(outWeight, inWeight float64) float64 {
	return p[0]*math.Pow(outWeight, p[1]) + p[2]*math.Pow(inWeight, p[3]) + p[4]
}

// Func returns the parametric form as a Func value.
func (p Params) Func() Func {
	return p.Eval
}

// Default parameter sets: linear directed attachment, source ~ out + 1 and
// target ~ in + 1.
var (
	DefaultSourceParams = Params{1, 1, 0, 0, 1}
	DefaultTargetParams = Params{0, 0, 1, 1, 1}
)

// Model bundles the source-role and target-role preference functions.
// The zero Model is not usable; construct it with Parametric, Custom or Default.
type Model struct {
	source Func
	target Func
}

// Default returns the parametric model with DefaultSourceParams and
// DefaultTargetParams.
func Default() Model {
	return Parametric(DefaultSourceParams, DefaultTargetParams)
}

// Parametric builds a Model from two built-in parameter sets.
func Parametric(source, target Params) Model {
	return Model{source: source.Func(), target: target.Func()}
}

// Custom builds a Model from injected functions. Panics if either is nil, as
// option constructors do across this module.
func Custom(source, target Func) Model {
	if source == nil || target == nil {
		panic("preference: Custom(nil)")
	}
	return Model{source: source, target: target}
}

// Valid reports whether both role functions are set.
func (m Model) Valid() bool {
	return m.source != nil && m.target != nil
}

// Source evaluates the source-role preference.
func (m Model) Source(outWeight, inWeight float64) float64 {
	return m.source(outWeight, inWeight)
}

// Target evaluates the target-role preference.
func (m Model) Target(outWeight, inWeight float64) float64 {
	return m.target(outWeight, inWeight)
}

// Eval evaluates both roles at once.
func (m Model) Eval(outWeight, inWeight float64) (source, target float64) {
	return m.source(outWeight, inWeight), m.target(outWeight, inWeight)
}
