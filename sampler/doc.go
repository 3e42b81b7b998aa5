// SPDX-License-Identifier: MIT

// Package sampler draws node ids proportionally to their source or target
// preference.
//
// Two interchangeable implementations satisfy Sampler:
//
//	Tree   - implicit binary heap of subtree aggregates; O(log N) updates and
//	         draws, exclusions handled by rejection.
//	Linear - flat arrays with running totals; O(1) updates, O(N) draws,
//	         exclusions handled by skipping. Optional Presort.
//
// Both evaluate preferences through a preference.Model, keep every new node at
// zero preference until SetWeights is called, and report exhaustion through
// ErrNoCandidate rather than a panic.
//
// Randomness is always injected as *rand.Rand; samplers never seed or own an
// RNG, so callers control reproducibility.
package sampler
