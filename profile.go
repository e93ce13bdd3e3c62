// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo compress.go (top-level dispatch
// function composing lower-level internals)

package lzpredict

// Profile bundles the three core primitives' output for a single buffer,
// for the common case of "does this transform's output look more
// compressible than its input". It changes none of their individual
// contracts — Build, CodeLength, and EstimateMatches remain independently
// usable and independently specified.
type Profile struct {
	Histogram Histogram
	// CodeLength is the ideal bits/symbol for Histogram (see CodeLength).
	CodeLength float64
	// Matches is the estimated count of ≥3-byte repeated windows (see
	// EstimateMatches).
	Matches int
}

// Compressibility is a cheap [0.0, 1.0] proxy for how much smaller an
// entropy coder alone could make the input: 1 - CodeLength/8.0. It is not
// a prediction of actual compressed size and does not account for match
// encoding at all — it is deliberately the simplest threshold the purpose
// this package serves (spec.md §1: deciding whether a transform helped)
// actually needs from the entropy side alone.
func (p *Profile) Compressibility() float64 {
	return 1.0 - p.CodeLength/8.0
}

// BuildProfile computes a Profile for input in one call: histogram,
// ideal code length, and estimated match count.
func BuildProfile(input []byte) Profile {
	var p Profile
	Build(input, &p.Histogram)
	p.CodeLength = CodeLength(&p.Histogram, uint64(len(input)))
	p.Matches = EstimateMatches(input)
	return p
}
