// SPDX-License-Identifier: MIT
// Package: rpanet/builder
//
// id_fn.go - vertex ID schemes. An IDFn must be pure: the same index always
// yields the same ID, and distinct indices yield distinct IDs.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based index.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// This is the scheme rpanet itself uses for node ids.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// HexIDFn returns the lowercase hexadecimal representation of idx.
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ParseIDScheme resolves a scheme name: "decimal", "hex", "base36", or
// "prefix:<p>".
func ParseIDScheme(name string) (IDFn, error) {
	switch name {
	case "", "decimal":
		return DefaultIDFn, nil
	case "hex":
		return HexIDFn, nil
	case "base36":
		return AlphanumericIDFn, nil
	}
	if p, ok := strings.CutPrefix(name, "prefix:"); ok && p != "" {
		return PrefixIDFn(p), nil
	}
	return nil, fmt.Errorf("ParseIDScheme: unknown scheme %q: %w", name, ErrOptionViolation)
}

