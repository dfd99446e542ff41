// Package algo implements the two diff algorithm variants:
// DPDiff (bounded dynamic programming over a scoring function) and NDDiff
// (forward O(ND) Myers). Both operate on the seqs.Sequence abstraction and
// emit a sorted slice of SequenceDiff half-open index ranges.
package algo

// SequenceDiff is a pair of half-open index ranges describing a
// non-matching region on two sequences: [Start1,End1) on sequence A,
// [Start2,End2) on sequence B. At least one range is non-empty.
type SequenceDiff struct {
	Start1, End1 int
	Start2, End2 int
}

// Empty1 reports whether the A-side range is empty (a pure insertion).
func (d SequenceDiff) Empty1() bool { return d.Start1 == d.End1 }

// Empty2 reports whether the B-side range is empty (a pure deletion).
func (d SequenceDiff) Empty2() bool { return d.Start2 == d.End2 }

// Result is the outcome of running a diff algorithm: the edit script plus
// whether the deadline was hit before the algorithm could finish.
type Result struct {
	Diffs      []SequenceDiff
	HitTimeout bool
}
