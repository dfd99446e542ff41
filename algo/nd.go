package algo

import "github.com/dknieriem/editordiff/seqs"

// ndNode is one step of the path Myers' forward search builds while
// searching for an edit distance: the single edit step from the previous
// node's end (sx, sy) followed by the snake it found (to ex, ey), plus a
// handle to the previous node. Nodes live in a flat arena and are
// referenced by integer index rather than pointer, to keep the search's
// memory deterministic and contiguous.
type ndNode struct {
	sx, sy int
	ex, ey int
	prev   int32 // arena index, or -1 for the initial node
}

// NDDiff computes an edit script via the classical forward O((m+n)D)
// Myers algorithm: for each edit distance d from 0 up,
// for each diagonal k, extend the furthest-reaching x and follow the
// resulting snake. The deadline is checked once per increment of d; on
// expiry a single coarse SequenceDiff covering the unmatched remainder is
// appended and HitTimeout is set.
func NDDiff(a, b seqs.Sequence, deadline Deadline) Result {
	m, n := a.Length(), b.Length()
	if m == 0 && n == 0 {
		return Result{}
	}

	max := m + n
	arena := make([]ndNode, 0, max+4)
	v := make([]int32, 2*max+2) // indexed by k+max; holds arena indices
	for i := range v {
		v[i] = -1
	}
	vIdx := func(k int) int { return k + max }

	snake0 := seqs.EqualRun(a, b, 0, 0, min(m, n))
	arena = append(arena, ndNode{sx: 0, sy: 0, ex: snake0, ey: snake0, prev: -1})
	v[vIdx(0)] = 0
	if snake0 >= m && snake0 >= n {
		return Result{Diffs: ndDiffsFromPath(arena, 0)}
	}

	for d := 1; d <= max; d++ {
		if deadline.Expired() {
			return ndTimeoutResult(arena, v, m, n)
		}
		for k := -d; k <= d; k += 2 {
			var fromIdx int32
			var x int
			moveDown := k == -d
			if !moveDown && k != d {
				downIdx, rightIdx := v[vIdx(k+1)], v[vIdx(k-1)]
				if downIdx >= 0 && (rightIdx < 0 || arena[rightIdx].ex < arena[downIdx].ex) {
					moveDown = true
				}
			}
			if moveDown {
				fromIdx = v[vIdx(k+1)]
				if fromIdx < 0 {
					continue
				}
				x = arena[fromIdx].ex
			} else {
				fromIdx = v[vIdx(k-1)]
				if fromIdx < 0 {
					continue
				}
				x = arena[fromIdx].ex + 1
			}
			y := x - k
			if x < 0 || y < 0 || x > m || y > n {
				continue
			}
			sx, sy := x, y
			extra := seqs.EqualRun(a, b, x, y, min(m-x, n-y))
			ex, ey := x+extra, y+extra

			arena = append(arena, ndNode{sx: sx, sy: sy, ex: ex, ey: ey, prev: fromIdx})
			node := int32(len(arena) - 1)
			v[vIdx(k)] = node
			if ex >= m && ey >= n {
				return Result{Diffs: ndDiffsFromPath(arena, node)}
			}
		}
	}
	// Exhausted d without reaching (m, n): cannot happen for a correct
	// Myers search (max = m + n bounds the true edit distance), but this
	// keeps NDDiff total instead of panicking on an unexpected input.
	return ndTimeoutResult(arena, v, m, n)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ndTimeoutResult picks the furthest-reaching node discovered so far and
// emits its partial path plus one coarse trailing SequenceDiff covering
// whatever of (m, n) remains unmatched.
func ndTimeoutResult(arena []ndNode, v []int32, m, n int) Result {
	best := int32(-1)
	bestProgress := -1
	for _, idx := range v {
		if idx < 0 {
			continue
		}
		node := arena[idx]
		if p := node.ex + node.ey; p > bestProgress {
			bestProgress = p
			best = idx
		}
	}
	var diffs []SequenceDiff
	lastX, lastY := 0, 0
	if best >= 0 {
		diffs = ndDiffsFromPath(arena, best)
		lastX, lastY = arena[best].ex, arena[best].ey
	}
	if lastX < m || lastY < n {
		diffs = append(diffs, SequenceDiff{Start1: lastX, End1: m, Start2: lastY, End2: n})
	}
	return Result{Diffs: diffs, HitTimeout: true}
}

// ndDiffsFromPath walks the arena path ending at node back to its root,
// turning each edit step's [prev.ex, step.sx) x [prev.ey, step.sy) gap
// into a SequenceDiff, merging consecutive gaps that aren't separated by
// a non-empty snake, and returns them in source order.
func ndDiffsFromPath(arena []ndNode, node int32) []SequenceDiff {
	var chain []ndNode
	for idx := node; idx >= 0; idx = arena[idx].prev {
		chain = append(chain, arena[idx])
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}

	var diffs []SequenceDiff
	openGap := false
	var gapStart1, gapStart2 int
	prevEnd1, prevEnd2 := chain[0].ex, chain[0].ey
	for i := 1; i < len(chain); i++ {
		step := chain[i]
		if !openGap {
			gapStart1, gapStart2 = prevEnd1, prevEnd2
			openGap = true
		}
		if step.ex > step.sx || step.ey > step.sy {
			// Snake followed the edit: the gap closes at the edit's end.
			diffs = append(diffs, SequenceDiff{Start1: gapStart1, End1: step.sx, Start2: gapStart2, End2: step.sy})
			openGap = false
		}
		prevEnd1, prevEnd2 = step.ex, step.ey
	}
	if openGap {
		last := chain[len(chain)-1]
		diffs = append(diffs, SequenceDiff{Start1: gapStart1, End1: last.ex, Start2: gapStart2, End2: last.ey})
	}
	return diffs
}
