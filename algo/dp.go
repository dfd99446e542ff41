package algo

import "github.com/dknieriem/editordiff/seqs"

// ScoreFunc scores a matched pair of elements at 0-indexed offset i in
// sequence A and offset j in sequence B (only ever called when the two
// elements are already known to be equal). Higher scores are preferred.
type ScoreFunc func(i, j int) float64

// DefaultScore scores every match uniformly, yielding a minimum-edit-count
// alignment.
func DefaultScore(i, j int) float64 { return 1.0 }

type direction byte

const (
	dirNone direction = iota
	dirLeft
	dirTop
	dirDiag
)

// DPDiff computes the complement of a maximum-score common subsequence of
// a and b via full O(mn) dynamic programming. score is
// consulted for every matching pair of elements; pass DefaultScore for a
// plain LCS. The deadline is checked once per completed DP row; on
// expiry the best partial alignment computed so far is returned with
// HitTimeout set.
func DPDiff(a, b seqs.Sequence, score ScoreFunc, deadline Deadline) Result {
	m, n := a.Length(), b.Length()

	lcs := make([][]float64, m+1)
	dir := make([][]direction, m+1)
	runLen := make([][]int32, m+1)
	for i := range lcs {
		lcs[i] = make([]float64, n+1)
		dir[i] = make([]direction, n+1)
		runLen[i] = make([]int32, n+1)
	}

	filledRows := 0
	hitTimeout := false
rows:
	for i := 1; i <= m; i++ {
		if deadline.Expired() {
			hitTimeout = true
			break rows
		}
		ai := a.Element(i - 1)
		for j := 1; j <= n; j++ {
			if ai == b.Element(j-1) {
				diagScore := lcs[i-1][j-1] + score(i-1, j-1)
				topScore := lcs[i-1][j]
				leftScore := lcs[i][j-1]
				if diagScore >= topScore && diagScore >= leftScore {
					lcs[i][j] = diagScore
					dir[i][j] = dirDiag
					runLen[i][j] = runLen[i-1][j-1] + 1
				} else if topScore >= leftScore {
					lcs[i][j] = topScore
					dir[i][j] = dirTop
				} else {
					lcs[i][j] = leftScore
					dir[i][j] = dirLeft
				}
			} else {
				topScore := lcs[i-1][j]
				leftScore := lcs[i][j-1]
				if topScore >= leftScore {
					lcs[i][j] = topScore
					dir[i][j] = dirTop
				} else {
					lcs[i][j] = leftScore
					dir[i][j] = dirLeft
				}
			}
		}
		filledRows = i
	}

	diffs := backtrackDP(dir, filledRows, n)
	if filledRows < m {
		// Best-effort tail: the unprocessed prefix of A past the last
		// completed row could not be aligned before the deadline.
		diffs = append(diffs, SequenceDiff{Start1: filledRows, End1: m, Start2: n, End2: n})
	}
	return Result{Diffs: diffs, HitTimeout: hitTimeout}
}

// backtrackDP walks dir from (i, j) back to (0, 0), merging contiguous
// non-diagonal steps into SequenceDiffs, and returns them in source order.
func backtrackDP(dir [][]direction, i, j int) []SequenceDiff {
	var diffs []SequenceDiff
	end1, end2 := i, j
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dir[i][j] == dirDiag:
			if i != end1 || j != end2 {
				diffs = append(diffs, SequenceDiff{Start1: i, End1: end1, Start2: j, End2: end2})
			}
			i--
			j--
			end1, end2 = i, j
		case i > 0 && (j == 0 || dir[i][j] == dirTop):
			i--
		case j > 0 && (i == 0 || dir[i][j] == dirLeft):
			j--
		default:
			i--
			j--
		}
	}
	if i != end1 || j != end2 {
		diffs = append(diffs, SequenceDiff{Start1: i, End1: end1, Start2: j, End2: end2})
	}
	// reverse into source order
	for l, r := 0, len(diffs)-1; l < r; l, r = l+1, r-1 {
		diffs[l], diffs[r] = diffs[r], diffs[l]
	}
	return diffs
}
