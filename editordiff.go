// Package editordiff computes an editor-grade structural diff between two
// line-oriented text buffers: which lines changed, and within each
// changed region, exactly which characters changed.
package editordiff

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/heuristics"
	"github.com/dknieriem/editordiff/intern"
	"github.com/dknieriem/editordiff/pos"
	"github.com/dknieriem/editordiff/refine"
	"github.com/dknieriem/editordiff/seqs"
)

// lineDispatchThreshold is the combined-line-count cutoff below which the
// line-level dispatcher prefers DPDiff over NDDiff.
const lineDispatchThreshold = 1700

// DiffOptions controls how Compute behaves.
type DiffOptions struct {
	// IgnoreTrimWhitespace, when true, suppresses whitespace rescan: a
	// line that is equal to its counterpart once trimmed is reported as
	// fully unchanged, with no synthetic whitespace-delta mapping. The
	// default, false, runs whitespace rescan so a pure indentation
	// change still surfaces as an outer mapping with one inner change.
	IgnoreTrimWhitespace bool
	// MaxComputationTimeMs bounds wall-clock time across all stages; 0
	// means no deadline.
	MaxComputationTimeMs uint32
	// ComputeMoves is not implemented; Compute rejects any input that
	// sets it.
	ComputeMoves bool
	// ExtendToSubwords runs an extra camelCase/digit subword merge pass
	// after whole-word extension during character-level refinement. That
	// pass only merges across gaps whose characters all share one word
	// category, and whole-word extension has already merged every such
	// gap, so setting it does not change the result.
	ExtendToSubwords bool
}

// DiffInput is the input to Compute. Original and Modified must contain
// raw line content with no line terminator; a trailing empty line after a
// final newline is a valid, significant element.
type DiffInput struct {
	Original []string
	Modified []string
	Options  DiffOptions
}

// LinesDiff is the result of Compute.
type LinesDiff struct {
	Changes    []pos.LineRangeMapping
	HitTimeout bool
}

// ErrComputeMovesUnsupported is returned by Compute when DiffOptions.ComputeMoves is set.
var ErrComputeMovesUnsupported = errors.New("editordiff: compute_moves is not implemented")

// Compute runs the full pipeline: intern, build line sequences, dispatch
// the line-level diff, run the line-level heuristics, refine each
// surviving diff to exact character ranges, rescan equal gaps for
// whitespace-only deltas, and assemble the sorted, non-overlapping
// result.
func Compute(input DiffInput) (LinesDiff, error) {
	if input.Options.ComputeMoves {
		return LinesDiff{}, ErrComputeMovesUnsupported
	}

	deadline := algo.NoDeadline()
	if input.Options.MaxComputationTimeMs > 0 {
		deadline = algo.NewDeadline(time.Now().Add(time.Duration(input.Options.MaxComputationTimeMs) * time.Millisecond))
	}

	tbl := intern.New(len(input.Original) + len(input.Modified))
	originalSeq := seqs.NewLineSequence(tbl, input.Original)
	modifiedSeq := seqs.NewLineSequence(tbl, input.Modified)

	lineDiffs, hitTimeout := dispatchLineDiff(originalSeq, modifiedSeq, deadline)

	lineDiffs = heuristics.ShiftAndJoin(lineDiffs, originalSeq, modifiedSeq)
	lineDiffs = heuristics.RemoveShortMatches(lineDiffs)
	lineDiffs = heuristics.RemoveVeryShortMatchingLinesBetweenDiffs(lineDiffs, originalSeq)

	changes := make([]pos.LineRangeMapping, 0, len(lineDiffs))
	for _, d := range lineDiffs {
		res := refine.LineDiff(d, input.Original, input.Modified, deadline, input.Options.ExtendToSubwords)
		hitTimeout = hitTimeout || res.HitTimeout
		changes = append(changes, pos.LineRangeMapping{
			Original:     pos.LineRange{Start: d.Start1 + 1, EndExclusive: d.End1 + 1},
			Modified:     pos.LineRange{Start: d.Start2 + 1, EndExclusive: d.End2 + 1},
			InnerChanges: res.Inner,
		})
	}

	if !input.Options.IgnoreTrimWhitespace {
		changes = append(changes, whitespaceRescan(lineDiffs, input.Original, input.Modified)...)
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Original.Start < changes[j].Original.Start
	})

	return LinesDiff{Changes: changes, HitTimeout: hitTimeout}, nil
}

// dispatchLineDiff picks DPDiff, with the whitespace-sensitivity scoring
// that favors runs of consecutive equal lines, for small inputs, and
// NDDiff otherwise.
func dispatchLineDiff(a, b *seqs.LineSequence, deadline algo.Deadline) ([]algo.SequenceDiff, bool) {
	if a.Length()+b.Length() < lineDispatchThreshold {
		res := algo.DPDiff(a, b, lineMatchScore(a), deadline)
		return res.Diffs, res.HitTimeout
	}
	res := algo.NDDiff(a, b, deadline)
	return res.Diffs, res.HitTimeout
}

// lineMatchScore scores a matched line pair at 0.1 if the line is empty,
// else 1 + ln(1 + length); this biases the alignment toward keeping long
// runs of equal lines together instead of jittering through short,
// coincidentally-equal lines such as blank separators.
func lineMatchScore(original *seqs.LineSequence) algo.ScoreFunc {
	return func(i, _ int) float64 {
		line := original.RawLine(i)
		if len(line) == 0 {
			return 0.1
		}
		return 1 + math.Log(1+float64(len(line)))
	}
}

// whitespaceRescan examines the equal lines between each consecutive pair
// of line diffs — including the implicit boundaries before the first
// diff and after the last, so a buffer pair with no line-level diffs at
// all (e.g. a single line changed only in its indentation) still gets
// scanned in full — and synthesizes a LineRangeMapping, with one inner
// RangeMapping localizing the change, for every line whose original and
// modified text is equal after trimming but differs in leading or
// trailing whitespace.
func whitespaceRescan(lineDiffs []algo.SequenceDiff, original, modified []string) []pos.LineRangeMapping {
	sentinelStart := algo.SequenceDiff{}
	sentinelEnd := algo.SequenceDiff{Start1: len(original), End1: len(original), Start2: len(modified), End2: len(modified)}
	bracketed := make([]algo.SequenceDiff, 0, len(lineDiffs)+2)
	bracketed = append(bracketed, sentinelStart)
	bracketed = append(bracketed, lineDiffs...)
	bracketed = append(bracketed, sentinelEnd)

	var extra []pos.LineRangeMapping
	for i := 0; i < len(bracketed)-1; i++ {
		d1, d2 := bracketed[i], bracketed[i+1]
		gapLen := d2.Start1 - d1.End1
		if gapLen != d2.Start2-d1.End2 {
			continue
		}
		for k := 0; k < gapLen; k++ {
			origIdx, modIdx := d1.End1+k, d1.End2+k
			origLine, modLine := original[origIdx], modified[modIdx]
			if origLine == modLine {
				continue
			}
			if strings.TrimSpace(origLine) != strings.TrimSpace(modLine) {
				continue
			}
			inner := whitespaceDelta(origIdx+1, modIdx+1, origLine, modLine)
			extra = append(extra, pos.LineRangeMapping{
				Original:     pos.LineRange{Start: origIdx + 1, EndExclusive: origIdx + 2},
				Modified:     pos.LineRange{Start: modIdx + 1, EndExclusive: modIdx + 2},
				InnerChanges: []pos.RangeMapping{inner},
			})
		}
	}
	return extra
}

// whitespaceDelta localizes a leading- or trailing-whitespace-only
// difference between two lines known to be equal once trimmed.
func whitespaceDelta(origLine1, modLine1 int, origLine, modLine string) pos.RangeMapping {
	origLead, modLead := leadingWSLen(origLine), leadingWSLen(modLine)
	if origLead != modLead {
		return pos.RangeMapping{
			Original: pos.Range{Start: pos.Position{Line: origLine1, Column: 1}, End: pos.Position{Line: origLine1, Column: origLead + 1}},
			Modified: pos.Range{Start: pos.Position{Line: modLine1, Column: 1}, End: pos.Position{Line: modLine1, Column: modLead + 1}},
		}
	}
	origLen, modLen := len([]rune(origLine)), len([]rune(modLine))
	origTrail, modTrail := trailingWSLen(origLine), trailingWSLen(modLine)
	return pos.RangeMapping{
		Original: pos.Range{
			Start: pos.Position{Line: origLine1, Column: origLen - origTrail + 1},
			End:   pos.Position{Line: origLine1, Column: origLen + 1},
		},
		Modified: pos.Range{
			Start: pos.Position{Line: modLine1, Column: modLen - modTrail + 1},
			End:   pos.Position{Line: modLine1, Column: modLen + 1},
		},
	}
}

func leadingWSLen(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func trailingWSLen(s string) int {
	runes := []rune(s)
	n := 0
	for i := len(runes) - 1; i >= 0 && (runes[i] == ' ' || runes[i] == '\t'); i-- {
		n++
	}
	return n
}
