// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo sliding_window_pool.go (sync.Pool-backed
// scratch-state reuse), adapted from the sliding-window dictionary to the
// match estimator's flat hash table.

package lzpredict

import "sync"

// matchTablePool pools the match estimator's 16384-entry, 64KiB scratch
// table across calls. The table carries no information between calls —
// each acquire zeroes it in full, preserving EstimateMatches's contract
// that no state persists across invocations — this only avoids repeated
// 64KiB heap allocation and zeroing-via-allocation under load.
var matchTablePool = sync.Pool{
	New: func() any {
		return new([matchTableSize]uint32)
	},
}

// acquireMatchTable returns a zeroed 16384-entry table from the pool.
func acquireMatchTable() *[matchTableSize]uint32 {
	table := matchTablePool.Get().(*[matchTableSize]uint32)
	*table = [matchTableSize]uint32{}
	return table
}

// releaseMatchTable returns table to the pool.
func releaseMatchTable(table *[matchTableSize]uint32) {
	matchTablePool.Put(table)
}
