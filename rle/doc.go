// Package rle run-length encodes discrete label sequences into labeled
// intervals and decodes them back.
//
// 🚀 What is it for?
//
//	A per-sample state sequence (for instance a Viterbi path produced by an
//	HMM) is mostly long runs of the same label.  Storing, querying and
//	plotting it as (start, stop, label) runs is far cheaper than handling
//	every sample:
//
//	  [1 1 1 1 1 0 0 2 2 9 9 9 9 9 9 9 9 9 9]
//	  → (0,5,1) (5,7,0) (7,9,2) (9,19,9)
//
// ✨ Key features:
//   - eager mode: Encode materializes all runs, O(N) time, O(R) memory
//   - lazy mode: Scan yields runs one at a time; IterDecode yields samples
//     one at a time without allocating the decoded sequence
//   - WithOffset shifts every start/stop when the input is a suffix of a
//     longer recording (e.g. after a warm-up period was discarded)
//   - Annotate attaches durations in samples and milliseconds
//
// Intervals are half-open: Start is inclusive, Stop exclusive.  Intervals
// produced from one sequence are contiguous, sorted, and tile
// [offset, offset+len(seq)) exactly.
//
// ⚙️ Usage:
//
//	ivs, err := rle.Encode(labels)
//	if err != nil {
//	    // rle.ErrEmptyInput
//	}
//	back := rle.Decode(ivs) // equals labels
//
// Complexity:
//
//   - Encode / Scan: O(N) time; O(R) (eager) or O(1) (lazy) extra memory.
//   - Decode: O(N) time and memory; IterDecode: O(1) extra memory.
package rle
