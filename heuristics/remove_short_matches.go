package heuristics

import "github.com/dknieriem/editordiff/algo"

// maxShortMatchGap is the fixed threshold for the first coalescing pass: two
// diffs separated by an equal gap of this many lines or fewer, on both
// sides, are merged unconditionally.
const maxShortMatchGap = 2

// RemoveShortMatches merges adjacent diffs whenever the equal gap between
// them is small enough, on both sides, to be considered noise rather than
// a meaningful unchanged region.
func RemoveShortMatches(diffs []algo.SequenceDiff) []algo.SequenceDiff {
	return mergeByGap(diffs, maxShortMatchGap)
}

func mergeByGap(diffs []algo.SequenceDiff, maxGap int) []algo.SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	out := make([]algo.SequenceDiff, 0, len(diffs))
	cur := diffs[0]
	for _, next := range diffs[1:] {
		gap1 := next.Start1 - cur.End1
		gap2 := next.Start2 - cur.End2
		if gap1 <= maxGap && gap2 <= maxGap {
			cur = algo.SequenceDiff{Start1: cur.Start1, End1: next.End1, Start2: cur.Start2, End2: next.End2}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}
