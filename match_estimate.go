// SPDX-License-Identifier: MIT
// Copyright (c) 2026 birchlake
// Source: github.com/woozymasta/lzo sliding_window.go (head3 hash, 16384-entry
// table sizing) and compress_1x_fast.go (multiplicative hash-then-probe shape),
// adapted from a chained LZO77 match finder into a single-slot estimator.

package lzpredict

const (
	matchTableBits = 14
	matchTableSize = 1 << matchTableBits // 16384 entries, per spec's tuned table size
	matchTableMask = matchTableSize - 1
	matchWindow    = 3 // bytes per probed window; shorter matches aren't modelled
)

// EstimateMatches approximates the count of positions in input whose 3-byte
// window also occurred "recently" earlier in input, as a stand-in for the
// number of ≥3-byte LZ77 matches a real compressor's parser would find.
//
// It does not run an LZ77 parse. Instead it keeps a single fixed-size
// (16384-entry) hash table of 32-bit fingerprints, one entry per hashed
// 3-byte window. At each position it hashes the window, compares the
// computed fingerprint against whatever fingerprint currently occupies
// that slot, counts a match on equality, and then unconditionally
// overwrites the slot with the new fingerprint — regardless of whether
// this position matched. There is no collision chain and no verification
// that two windows hashing to the same slot are actually equal beyond the
// 32-bit fingerprint compare: an implementer tempted to "fix" this by
// adding chaining or length verification would destroy the ~1.4 GiB/s
// throughput this shape is tuned for, for no improvement to the caller's
// actual use (a ratio comparison, not an exact count).
//
// The function is total: inputs shorter than 3 bytes return 0, and there
// is no other failure mode. Matches are not reported by length or offset,
// only counted. EstimateMatches is deterministic for a given input but
// makes no promises about which positions matched versus a different
// window size or table size — see the package-level accuracy envelope in
// the test suite for the recall/false-positive trade-off this table size
// buys.
func EstimateMatches(input []byte) int {
	n := len(input)
	if n < matchWindow {
		return 0
	}

	table := acquireMatchTable()
	defer releaseMatchTable(table)

	count := 0
	last := n - matchWindow
	for i := 0; i <= last; i++ {
		fp := windowFingerprint(input[i : i+matchWindow])
		idx := fp >> 5 & matchTableMask
		if table[idx] == fp {
			count++
		}
		table[idx] = fp
	}

	return count
}

// windowFingerprint hashes a 3-byte window into a 32-bit value used both to
// derive the table index (a 14-bit slice of it, see EstimateMatches) and as
// the fingerprint stored in and compared against that slot. Reusing the
// same mixed value for both purposes is deliberate: it is what the spec
// calls out as the natural choice, and it means one multiply-and-fold
// serves both the dispersion and the equality check.
//
// The window is packed losslessly into 24 bits, multiplied by the odd
// constant 0x9f5f and folded with h ^= h>>16, so the index bits also
// depend on the high product bits. Every 3-byte window gets a distinct
// fingerprint, so the 32-bit compare never confuses two different windows.
//
// The low bit is forced to 1 so a fingerprint is never the zero value: the
// table starts zeroed, and without this a {0,0,0} window's first
// occurrence would spuriously compare equal to an untouched slot. Forcing
// bit 0 doesn't affect the index derived from this value (EstimateMatches
// discards it with >>5).
func windowFingerprint(w []byte) uint32 {
	key := uint32(w[0])
	key = key<<8 ^ uint32(w[1])
	key = key<<8 ^ uint32(w[2])
	h := key * 0x9f5f
	h ^= h >> 16
	return h | 1
}
