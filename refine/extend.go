package refine

import (
	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/seqs"
)

// extendToWords merges adjacent character diffs whenever the equal gap
// between them lies entirely within one word (every element in the gap is
// word-category on both sides): the "equal region" the gap represents is
// then a spurious split inside what should read as one word-level change,
// so the two diffs plus the gap collapse into one. A diff with no such
// neighbor (nothing for its adjacent word to consume) is left exactly as
// the character-level diff produced it. Implemented as a left-to-right
// queue sweep: absorbing one gap can bring the merged diff's new end
// adjacent to the next gap, which must be re-evaluated rather than
// skipped.
func extendToWords(diffs []algo.SequenceDiff, cs1, cs2 *seqs.CharSequence) []algo.SequenceDiff {
	return mergeAcrossGaps(diffs, cs1, cs2, isWordRun)
}

// extendToSubwordBoundaries is extendToWords restricted to gaps that
// additionally stay within one subword segment (no camelCase hump or
// digit/letter transition inside the gap) — a strictly narrower merge
// condition than extendToWords, so it only ever produces equal or more
// diffs, never fewer.
func extendToSubwordBoundaries(diffs []algo.SequenceDiff, cs1, cs2 *seqs.CharSequence) []algo.SequenceDiff {
	return mergeAcrossGaps(diffs, cs1, cs2, isSubwordRun)
}

// gapPredicate reports whether the elements of seq in [start, end) form a
// run that may be silently absorbed into an adjacent diff.
type gapPredicate func(seq *seqs.CharSequence, start, end int) bool

func mergeAcrossGaps(diffs []algo.SequenceDiff, cs1, cs2 *seqs.CharSequence, mergeable gapPredicate) []algo.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	out := append([]algo.SequenceDiff(nil), diffs...)
	for i := 0; i < len(out)-1; i++ {
		d1, d2 := out[i], out[i+1]
		if mergeable(cs1, d1.End1, d2.Start1) && mergeable(cs2, d1.End2, d2.Start2) {
			out[i] = algo.SequenceDiff{Start1: d1.Start1, End1: d2.End1, Start2: d1.Start2, End2: d2.End2}
			out = append(out[:i+1], out[i+2:]...)
			i--
		}
	}
	return out
}

// isWordRun reports whether every element of seq in [start, end) is
// word-category. An empty range is vacuously a run (so already-touching
// diffs still combine).
func isWordRun(seq *seqs.CharSequence, start, end int) bool {
	for i := start; i < end; i++ {
		if !seqs.IsWord(seqs.Classify(seq.Element(i))) {
			return false
		}
	}
	return true
}

// isSubwordRun reports whether every element of seq in [start, end) is
// word-category AND shares the same category (so the run never crosses a
// camelCase hump or digit/letter transition).
func isSubwordRun(seq *seqs.CharSequence, start, end int) bool {
	if start >= end {
		return true
	}
	cat := seqs.Classify(seq.Element(start))
	if !seqs.IsWord(cat) {
		return false
	}
	for i := start + 1; i < end; i++ {
		if seqs.Classify(seq.Element(i)) != cat {
			return false
		}
	}
	return true
}
