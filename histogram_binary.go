// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo doc.go (stream-framing idiom: callers
// carry OutLen/size alongside a compressed blob); spec.md §3/§6 (flat
// native-endian 256×uint32 ABI layout)

package lzpredict

import "encoding/binary"

// histogramWireSize is the serialized size of a Histogram: 256 counters,
// 4 bytes each, little-endian.
const histogramWireSize = 256 * 4

// MarshalBinary encodes h as 256 little-endian uint32 counters (1024
// bytes total), in the same order as the flat in-memory layout. The wire
// form is always little-endian, so it is byte-identical to the in-memory
// layout only on little-endian hosts. This is additive: it does not change the
// behavior of Build or CodeLength, which never see the wire form.
func (h *Histogram) MarshalBinary() ([]byte, error) {
	out := make([]byte, histogramWireSize)
	for i, c := range h.Counts {
		binary.LittleEndian.PutUint32(out[i*4:], c)
	}
	return out, nil
}

// UnmarshalBinary decodes a buffer produced by MarshalBinary into h,
// replacing its current counters. Unlike Build/CodeLength/EstimateMatches,
// this is not a total function: data of any length other than exactly
// histogramWireSize bytes is a caller error, reported as
// ErrHistogramBufferSize rather than silently truncated or zero-padded.
func (h *Histogram) UnmarshalBinary(data []byte) error {
	if len(data) != histogramWireSize {
		return ErrHistogramBufferSize
	}

	for i := range h.Counts {
		h.Counts[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return nil
}
