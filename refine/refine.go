// Package refine implements the character-level refinement stage: turning
// one line-level SequenceDiff into a RangeMapping with precise inner
// highlight ranges, by re-running the diff algorithms on trimmed character
// sequences built from just that diff's lines.
package refine

import (
	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/heuristics"
	"github.com/dknieriem/editordiff/pos"
	"github.com/dknieriem/editordiff/seqs"
)

// charDispatchThreshold is the element-count cutoff below which the
// character-level dispatcher prefers DPDiff (with a boundary-score bonus)
// over NDDiff.
const charDispatchThreshold = 500

// boundaryBonusWeight keeps the per-match boundary-score nudge small enough
// that it only breaks ties between otherwise-equal alignments; it must
// never outweigh a genuine difference in match count.
const boundaryBonusWeight = 1e-4

// Result is one line-level diff refined down to its inner RangeMappings
// plus whether refinement hit its deadline.
type Result struct {
	Inner      []pos.RangeMapping
	HitTimeout bool
}

// LineDiff refines a single line-level algo.SequenceDiff into the inner
// pos.RangeMappings of its lines. original and modified are the full raw
// line slices of each buffer (no terminators); extendToSubwords enables
// the optional camelCase/digit subword merge pass, which runs after
// extendToWords and finds no gap that pass left unmerged, so it does not
// change the result.
func LineDiff(d algo.SequenceDiff, original, modified []string, deadline algo.Deadline, extendToSubwords bool) Result {
	span1Start, span1End, span2Start, span2End := normalizeSpan(d, len(original), len(modified))

	cs1 := seqs.NewCharSequence(original, span1Start, span1End, span1Start+1, false)
	cs2 := seqs.NewCharSequence(modified, span2Start, span2End, span2Start+1, false)

	// The normalized span may be one line wider than the diff itself, but
	// that border line is identical on both sides, so diffing the whole
	// pair leaves it untouched as a leading or trailing equal run.
	charDiffs, hitTimeout := dispatch(cs1, cs2, deadline)

	charDiffs = heuristics.ShiftAndJoin(charDiffs, cs1, cs2)
	charDiffs = extendToWords(charDiffs, cs1, cs2)
	if extendToSubwords {
		charDiffs = extendToSubwordBoundaries(charDiffs, cs1, cs2)
	}
	charDiffs = removeVeryShortCharDiffs(charDiffs, cs1, cs2)

	return Result{Inner: translateAll(charDiffs, cs1, cs2), HitTimeout: hitTimeout}
}

// normalizeSpan widens both sides of a line-level diff by one adjacent line
// when either side is empty (a pure insertion or deletion): the preceding
// line when both sides have one, else the following line when both sides
// have one, else not at all. This gives refinement real line content on
// both sides whenever the buffers allow it.
func normalizeSpan(d algo.SequenceDiff, nOriginal, nModified int) (s1, e1, s2, e2 int) {
	s1, e1, s2, e2 = d.Start1, d.End1, d.Start2, d.End2
	if s1 != e1 && s2 != e2 {
		return
	}
	if s1 > 0 && s2 > 0 {
		s1--
		s2--
	} else if e1 < nOriginal && e2 < nModified {
		e1++
		e2++
	}
	return
}

// dispatch runs the character-level diff dispatcher: DPDiff with a
// boundary-score bonus for small inputs, NDDiff otherwise.
func dispatch(cs1, cs2 *seqs.CharSequence, deadline algo.Deadline) ([]algo.SequenceDiff, bool) {
	m, n := cs1.Length(), cs2.Length()
	if m+n < charDispatchThreshold {
		res := algo.DPDiff(cs1, cs2, boundaryBonusScore(cs1, cs2), deadline)
		return res.Diffs, res.HitTimeout
	}
	res := algo.NDDiff(cs1, cs2, deadline)
	return res.Diffs, res.HitTimeout
}

// boundaryBonusScore scores each matched character pair at 1.0 plus a tiny
// bonus proportional to how natural the positions immediately surrounding
// the match are as diff boundaries, so that among equally-sized
// alignments the dispatcher prefers the one whose edges land on word or
// whitespace boundaries.
func boundaryBonusScore(cs1, cs2 *seqs.CharSequence) algo.ScoreFunc {
	return func(i, j int) float64 {
		bonus := cs1.BoundaryScore(i) + cs1.BoundaryScore(i+1) + cs2.BoundaryScore(j) + cs2.BoundaryScore(j+1)
		return 1.0 + boundaryBonusWeight*float64(bonus)
	}
}

// translateAll translates each surviving character diff back to an
// original-buffer RangeMapping, in source order.
func translateAll(diffs []algo.SequenceDiff, cs1, cs2 *seqs.CharSequence) []pos.RangeMapping {
	if len(diffs) == 0 {
		return nil
	}
	out := make([]pos.RangeMapping, len(diffs))
	for i, d := range diffs {
		out[i] = pos.RangeMapping{
			Original: cs1.TranslateRange(d.Start1, d.End1),
			Modified: cs2.TranslateRange(d.Start2, d.End2),
		}
	}
	return out
}
