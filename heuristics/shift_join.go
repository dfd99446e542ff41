// Package heuristics implements the line-level (and, reused, character-level)
// boundary-shifting and short-match-coalescing passes used between line
// diffing and character-level refinement:
// ShiftAndJoin, RemoveShortMatches, and
// RemoveVeryShortMatchingLinesBetweenDiffs.
package heuristics

import "github.com/dknieriem/editordiff/algo"

// Sequence is the subset of seqs.Sequence ShiftAndJoin needs. Defined
// locally (rather than imported from package seqs) so ShiftAndJoin depends
// only on this contract, not on the sequence implementations;
// RemoveVeryShortMatchingLinesBetweenDiffs does take a *seqs.LineSequence.
type Sequence interface {
	Length() int
	Element(i int) int32
	BoundaryScore(position int) int
}

// ShiftAndJoin runs two passes in order: first
// join_sequence_diffs_by_shifting (merge adjacent diffs whenever the
// content between them is a "repeated line" bridge that can be
// reclassified into one side or the other), then shift_sequence_diffs
// (slide each diff independently to the boundary offset maximizing the
// sum of its endpoints' boundary scores).
func ShiftAndJoin(diffs []algo.SequenceDiff, a, b Sequence) []algo.SequenceDiff {
	diffs = joinByShifting(diffs, a, b)
	diffs = shiftToBestBoundary(diffs, a, b)
	return diffs
}

// joinByShifting is the first pass. Two adjacent diffs are
// merged when the gap between them can be entirely bridged from the left
// (extending the earlier diff's end) or from the right (pulling the later
// diff's start back), per the "repeated line" degree of freedom: a line
// can change which side of a boundary it falls on when it is identical
// to the line already on that side.
func joinByShifting(diffs []algo.SequenceDiff, a, b Sequence) []algo.SequenceDiff {
	out := append([]algo.SequenceDiff(nil), diffs...)
	for i := 0; i < len(out)-1; i++ {
		d1, d2 := out[i], out[i+1]
		if d1.End1 == d2.Start1 && d1.End2 == d2.Start2 {
			continue // already touching; nothing to bridge
		}
		switch {
		case canBridgeRight(a, b, d1, d2.Start1, d2.Start2):
			out[i] = algo.SequenceDiff{Start1: d1.Start1, End1: d2.End1, Start2: d1.Start2, End2: d2.End2}
			out = append(out[:i+1], out[i+2:]...)
			i--
		case canBridgeLeft(a, b, d2, d1.End1, d1.End2):
			out[i] = algo.SequenceDiff{Start1: d1.Start1, End1: d2.End1, Start2: d1.Start2, End2: d2.End2}
			out = append(out[:i+1], out[i+2:]...)
			i--
		}
	}
	return out
}

// canBridgeRight reports whether d's end can be extended, one gap element
// at a time, all the way to (target1, target2), each step requiring the
// newly absorbed element to equal the one immediately preceding it on any
// side of d that is currently non-empty.
func canBridgeRight(a, b Sequence, d algo.SequenceDiff, target1, target2 int) bool {
	if target1-d.End1 != target2-d.End2 || target1 < d.End1 {
		return false
	}
	width1, width2 := d.End1-d.Start1, d.End2-d.Start2
	cur1, cur2 := d.End1, d.End2
	for cur1 < target1 {
		if width1 > 0 && a.Element(cur1-1) != a.Element(cur1) {
			return false
		}
		if width2 > 0 && b.Element(cur2-1) != b.Element(cur2) {
			return false
		}
		cur1++
		cur2++
	}
	return true
}

// canBridgeLeft is canBridgeRight's mirror image: it reports whether d's
// start can be pulled back, one gap element at a time, all the way to
// (target1, target2).
func canBridgeLeft(a, b Sequence, d algo.SequenceDiff, target1, target2 int) bool {
	if d.Start1-target1 != d.Start2-target2 || target1 > d.Start1 {
		return false
	}
	width1, width2 := d.End1-d.Start1, d.End2-d.Start2
	cur1, cur2 := d.Start1, d.Start2
	for cur1 > target1 {
		if width1 > 0 && a.Element(cur1-1) != a.Element(cur1) {
			return false
		}
		if width2 > 0 && b.Element(cur2-1) != b.Element(cur2) {
			return false
		}
		cur1--
		cur2--
	}
	return true
}

// shiftToBestBoundary is the second pass: each diff, in
// isolation, is slid left/right within the equal runs bounding it (using
// the same repeated-line bridging condition to determine how far it may
// move) to the offset maximizing the sum of boundary scores at its two
// resulting endpoints.
func shiftToBestBoundary(diffs []algo.SequenceDiff, a, b Sequence) []algo.SequenceDiff {
	out := append([]algo.SequenceDiff(nil), diffs...)
	for i, d := range out {
		limit1Left, limit2Left := 0, 0
		if i > 0 {
			limit1Left, limit2Left = out[i-1].End1, out[i-1].End2
		}
		limit1Right, limit2Right := a.Length(), b.Length()
		if i < len(out)-1 {
			limit1Right, limit2Right = out[i+1].Start1, out[i+1].Start2
		}

		maxLeft := maxShiftLeft(a, b, d, limit1Left, limit2Left)
		maxRight := maxShiftRight(a, b, d, limit1Right, limit2Right)

		best := d
		bestScore := boundaryScoreSum(a, b, d)
		for delta := 1; delta <= maxRight || delta <= maxLeft; delta++ {
			if delta <= maxRight {
				cand := shiftBy(d, delta)
				if s := boundaryScoreSum(a, b, cand); s > bestScore {
					bestScore, best = s, cand
				}
			}
			if delta <= maxLeft {
				cand := shiftBy(d, -delta)
				if s := boundaryScoreSum(a, b, cand); s > bestScore {
					bestScore, best = s, cand
				}
			}
		}
		out[i] = best
	}
	return out
}

func shiftBy(d algo.SequenceDiff, delta int) algo.SequenceDiff {
	return algo.SequenceDiff{
		Start1: d.Start1 + delta, End1: d.End1 + delta,
		Start2: d.Start2 + delta, End2: d.End2 + delta,
	}
}

func boundaryScoreSum(a, b Sequence, d algo.SequenceDiff) int {
	return a.BoundaryScore(d.Start1) + a.BoundaryScore(d.End1) +
		b.BoundaryScore(d.Start2) + b.BoundaryScore(d.End2)
}

// maxShiftRight returns the largest K such that d's endpoints can each
// move right by K, one element at a time, without crossing limit1/limit2
// and while satisfying the repeated-line bridging condition at every
// step.
func maxShiftRight(a, b Sequence, d algo.SequenceDiff, limit1, limit2 int) int {
	width1, width2 := d.End1-d.Start1, d.End2-d.Start2
	k := 0
	end1, end2 := d.End1, d.End2
	for end1 < limit1 && end2 < limit2 {
		if width1 > 0 && a.Element(end1-1) != a.Element(end1) {
			break
		}
		if width2 > 0 && b.Element(end2-1) != b.Element(end2) {
			break
		}
		end1++
		end2++
		k++
	}
	return k
}

// maxShiftLeft is maxShiftRight's mirror image.
func maxShiftLeft(a, b Sequence, d algo.SequenceDiff, limit1, limit2 int) int {
	width1, width2 := d.End1-d.Start1, d.End2-d.Start2
	k := 0
	start1, start2 := d.Start1, d.Start2
	for start1 > limit1 && start2 > limit2 {
		if width1 > 0 && a.Element(start1-1) != a.Element(start1) {
			break
		}
		if width2 > 0 && b.Element(start2-1) != b.Element(start2) {
			break
		}
		start1--
		start2--
		k++
	}
	return k
}
