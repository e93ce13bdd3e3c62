// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo (package style); other_examples
// wzqhbustb-vego storage/encoding statistics.go (Shannon-entropy-over-
// histogram reduction shape)

package lzpredict

import "math"

// CodeLength computes the ideal (Shannon) code length in bits per input
// symbol for hist, given the total number of symbols that produced it:
//
//	Σ_i (count_i/total) · log2(total/count_i)
//
// summed over the 256 counters, skipping zero counters. Returns exactly
// 0.0 when total is 0. The result is always in [0.0, 8.0] for total > 0.
//
// This is the information-theoretic floor an entropy coder (Huffman,
// arithmetic, range) approaches for a memoryless source with hist's symbol
// distribution — not an estimate of any particular coder's real output
// size. The computation is double-precision throughout and is not
// permitted to substitute an integer-log or table-lookup approximation:
// callers compare this value against a threshold, where the last few bits
// of precision matter more than the ~900ns this costs for 256 symbols.
func CodeLength(hist *Histogram, total uint64) float64 {
	if total == 0 {
		return 0.0
	}

	totalF := float64(total)
	var bits float64
	for _, count := range hist.Counts {
		if count == 0 {
			continue
		}
		p := float64(count) / totalF
		bits += p * math.Log2(1.0/p)
	}

	return bits
}
