// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzpredict estimates how well a byte stream will compress under a
generic LZ77+entropy-coder pipeline, without actually compressing it.

It is built around three independent primitives:

  - Histogram / Build: a byte-frequency histogram over a flat buffer.
  - CodeLength: the ideal (Shannon) code length in bits/symbol for a
    histogram, the information-theoretic floor an entropy coder approaches.
  - EstimateMatches: an approximate count of ≥3-byte repeated substrings,
    using a fixed-size single-slot hash table instead of a real LZ77 parse.

None of the three perform compression, and EstimateMatches reports neither
match lengths nor offsets — only a count. They exist so that authors of
lossless data transforms (field reordering, delta coding, stream splitting)
can cheaply compare a transform's output against its input and decide
whether the transform helped, without running a real compressor.

	var h lzpredict.Histogram
	lzpredict.Build(data, &h)
	bits := lzpredict.CodeLength(&h, uint64(len(data)))
	matches := lzpredict.EstimateMatches(data)

For a one-shot view of all three, see Profile.
*/
package lzpredict
