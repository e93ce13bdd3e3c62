// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo errors.go (sentinel-error pattern)

package lzpredict

import "errors"

// Sentinel errors. The three core operations (Build, CodeLength,
// EstimateMatches) are total functions per the package's own contract and
// never return one of these. They exist solely for
// (*Histogram).UnmarshalBinary, the one operation in this package that
// consumes externally-supplied bytes and can therefore genuinely fail.
var (
	// ErrHistogramBufferSize is returned by UnmarshalBinary when data is
	// not exactly 1024 bytes (256 little-endian uint32 counters).
	ErrHistogramBufferSize = errors.New("lzpredict: histogram buffer must be exactly 1024 bytes")
)
