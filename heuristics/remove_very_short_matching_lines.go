package heuristics

import (
	"strings"

	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/seqs"
)

// maxTrivialEqualGap is the fixed threshold for the second coalescing pass.
const maxTrivialEqualGap = 3

// maxTrivialEqualContent bounds how much non-whitespace content an equal
// region bridged by this pass may contain; it is what distinguishes a
// "trivial" gap (blank lines, a lone brace) from a genuine short match.
const maxTrivialEqualContent = 3

// RemoveVeryShortMatchingLinesBetweenDiffs merges adjacent diffs whenever
// the equal gap between them is at most maxTrivialEqualGap lines on both
// sides AND that gap's content is trivial: whitespace-only, or so short
// (by total trimmed length) that presenting it as a standalone unchanged
// region would be more distracting than helpful.
func RemoveVeryShortMatchingLinesBetweenDiffs(diffs []algo.SequenceDiff, original *seqs.LineSequence) []algo.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	out := make([]algo.SequenceDiff, 0, len(diffs))
	cur := diffs[0]
	for _, next := range diffs[1:] {
		gap1 := next.Start1 - cur.End1
		gap2 := next.Start2 - cur.End2
		if gap1 <= maxTrivialEqualGap && gap2 <= maxTrivialEqualGap && isTrivialEqualRegion(original, cur.End1, next.Start1) {
			cur = algo.SequenceDiff{Start1: cur.Start1, End1: next.End1, Start2: cur.Start2, End2: next.End2}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}

func isTrivialEqualRegion(seq *seqs.LineSequence, start, end int) bool {
	total := 0
	for i := start; i < end; i++ {
		total += len(strings.TrimSpace(seq.RawLine(i)))
		if total > maxTrivialEqualContent {
			return false
		}
	}
	return true
}
