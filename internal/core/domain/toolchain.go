// Package domain holds the core types of the gauntlet pipeline.
package domain

import "slices"

// Toolchain is a named Rust toolchain variant, e.g. "stable", "nightly"
// or a pinned version like "1.79.0".
type Toolchain string

// String returns the variant name.
func (t Toolchain) String() string {
	return string(t)
}

// Matrix is the set of toolchain variants the pipeline fans out over.
// Order is not significant; cardinality drives the fan-out count.
type Matrix struct {
	Toolchains []Toolchain
}

// Validate checks that the matrix is non-empty and free of duplicates.
func (m Matrix) Validate() error {
	if len(m.Toolchains) == 0 {
		return ErrEmptyMatrix
	}

	seen := make(map[Toolchain]struct{}, len(m.Toolchains))
	for _, tc := range m.Toolchains {
		if tc == "" {
			return ErrEmptyMatrix
		}
		if _, ok := seen[tc]; ok {
			return ErrDuplicateMatrixEntry
		}
		seen[tc] = struct{}{}
	}
	return nil
}

// Normalized returns a sorted copy of the toolchain list. Fan-out order is
// not part of the contract, but deterministic iteration keeps logs and
// tests stable.
func (m Matrix) Normalized() []Toolchain {
	out := slices.Clone(m.Toolchains)
	slices.Sort(out)
	return out
}
