package refine

import (
	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/seqs"
)

// shortDiffMaxLen is the span cutoff (in code points) at or below which a
// whitespace-only character diff is dropped rather than surfaced as an
// inner change.
const shortDiffMaxLen = 3

// removeVeryShortCharDiffs drops character diffs that are pure noise: a
// diff entirely composed of whitespace/line-break elements, short enough
// that highlighting it would be more distracting than helpful. This is
// deliberately narrower than "any diff under N characters" — a genuine
// one-character substitution (e.g. "hello" vs "hallo") must survive
// untouched, so only diffs whose content, without any trimming, is
// wholly whitespace are candidates; the untrimmed length still has to be
// non-zero; an empty diff was never produced in the first place.
func removeVeryShortCharDiffs(diffs []algo.SequenceDiff, cs1, cs2 *seqs.CharSequence) []algo.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	out := diffs[:0:0]
	for _, d := range diffs {
		if isShortWhitespaceDiff(d, cs1, cs2) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func isShortWhitespaceDiff(d algo.SequenceDiff, cs1, cs2 *seqs.CharSequence) bool {
	len1, blank1 := spanInfo(cs1, d.Start1, d.End1)
	len2, blank2 := spanInfo(cs2, d.Start2, d.End2)
	if !blank1 || !blank2 {
		return false
	}
	return len1 <= shortDiffMaxLen && len2 <= shortDiffMaxLen
}

// spanInfo returns the element count of [start, end) and whether every
// element in it is whitespace or line-break category.
func spanInfo(seq *seqs.CharSequence, start, end int) (length int, allBlank bool) {
	allBlank = true
	for i := start; i < end; i++ {
		if !isBlank(seq.Element(i)) {
			allBlank = false
		}
	}
	return end - start, allBlank
}

func isBlank(e int32) bool {
	cat := seqs.Classify(e)
	return cat == seqs.CatWhitespace || cat == seqs.CatLineBreak
}
