// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo (four-way sub-histogram pattern, §9 design notes)

package lzpredict

import "golang.org/x/exp/constraints"

// Histogram counts occurrences of each byte value 0..255. The zero value is
// ready to use. Its memory layout is a flat array of 256 native-endian
// 32-bit unsigned integers; callers relying on that layout for an ABI
// boundary may do so (see MarshalBinary).
type Histogram struct {
	Counts [256]uint32
}

// Total returns the sum of all 256 counters.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h.Counts {
		total += uint64(c)
	}
	return total
}

// Build adds to h the count of each byte value in input. It does not zero h
// first — callers who want a fresh histogram should start from a zero value
// or call Reset. Build is a pure function: it allocates nothing and has no
// failure modes, including for a nil or empty input. Feeding more than
// 2^32-1 occurrences of a single byte value into one Histogram overflows
// its counter; Build neither detects nor corrects this and lets the
// counter wrap, so callers must not accumulate more than ~4 GiB into a
// single Histogram.
//
// The naive one-counter-per-byte loop has a single serial dependency chain
// on the incremented counter whenever the same byte recurs, which starves
// an out-of-order core of independent work. Build instead distributes
// successive bytes round-robin across four parallel sub-histograms and
// sums them at the end, breaking that chain. The result is bitwise
// identical to the naive loop; this is purely a throughput optimization,
// not a behavior change.
func Build(input []byte, h *Histogram) {
	var subs [4][256]uint32

	n := len(input)
	quads := n &^ 3 // n rounded down to a multiple of 4

	for i := 0; i < quads; i += 4 {
		subs[0][input[i+0]]++
		subs[1][input[i+1]]++
		subs[2][input[i+2]]++
		subs[3][input[i+3]]++
	}

	// Tail (len % 4 bytes) folds into sub-histogram 0.
	for i := quads; i < n; i++ {
		subs[0][input[i]]++
	}

	mergeSubHistograms(&h.Counts, &subs)
}

// mergeSubHistograms sums four parallel sub-histograms into dst,
// accumulating (dst is not zeroed here; Build's caller owns that decision).
// Written generically over constraints.Unsigned rather than fixed to
// uint32 so a future narrower or wider sub-histogram representation can
// reuse the same merge without a second hand-written loop.
func mergeSubHistograms[T constraints.Unsigned](dst *[256]uint32, subs *[4][256]T) {
	for v := 0; v < 256; v++ {
		dst[v] += uint32(subs[0][v]) + uint32(subs[1][v]) + uint32(subs[2][v]) + uint32(subs[3][v])
	}
}

// Reset zeroes all counters.
func (h *Histogram) Reset() {
	h.Counts = [256]uint32{}
}
