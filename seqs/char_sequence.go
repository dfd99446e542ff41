package seqs

import "github.com/dknieriem/editordiff/pos"

// Preference selects which side of an ambiguous offset translate_offset
// should resolve to.
type Preference int

const (
	// PreferLeft resolves an offset at the very start of a line's trimmed
	// content to that line's first column, without re-adding trimmed
	// leading whitespace.
	PreferLeft Preference = iota
	// PreferRight resolves a boundary offset to the start of the
	// following content, re-adding trimmed leading whitespace.
	PreferRight
)

// CharSequence is the character-level Sequence used by the refinement
// stage. Its elements are code points (plus a synthetic
// line-break sentinel between consecutive lines) drawn from a line span of
// one of the two input buffers, with metadata letting offsets be
// translated back to exact (line, column) positions in that buffer.
type CharSequence struct {
	elems []int32

	// lineStart[i] is the offset in elems where line i's (trimmed)
	// content begins; lineStart[len(lineStart)-1] is the sequence's total
	// length. len(lineStart) == number of lines in the span + 1.
	lineStart []int
	// leadingWS[i] is the count of leading whitespace code units trimmed
	// from line i (0 when considerWhitespace is true).
	leadingWS []int
	// startCol[i] is the 1-indexed column, in the original buffer, of line
	// i's first character before trimming (always 1, since whole lines are
	// used); leadingWS[i] is added on top of it to locate the trimmed
	// content.
	startCol []int

	rangeStartLine     int
	considerWhitespace bool
}

// NewCharSequence builds a CharSequence over raw[startLine:endLineExcl]
// (0-indexed into raw, but rangeStartLine is the 1-indexed line number of
// raw[startLine] in the original buffer). When considerWhitespace is
// false, each line's leading and trailing ASCII space/tab is trimmed from
// the element array but recorded so offsets can be translated back.
func NewCharSequence(raw []string, startLine, endLineExcl, rangeStartLine int, considerWhitespace bool) *CharSequence {
	nLines := endLineExcl - startLine
	cs := &CharSequence{
		lineStart:          make([]int, nLines+1),
		leadingWS:          make([]int, nLines),
		startCol:           make([]int, nLines),
		rangeStartLine:     rangeStartLine,
		considerWhitespace: considerWhitespace,
	}
	elems := make([]int32, 0, nLines*16)
	for i := 0; i < nLines; i++ {
		line := raw[startLine+i]
		cs.lineStart[i] = len(elems)

		// startCol is the column, in the original buffer, of this
		// chunk's first character before any whitespace trimming; for a
		// whole raw line that is always column 1. leadingWS is re-added
		// on top of it to recover the trimmed content's real column.
		var content string
		leadWS, col := 0, 1
		if considerWhitespace {
			content = line
		} else {
			leadWS = leadingIndentWidth(line)
			trailEnd := len(line)
			for trailEnd > leadWS && (line[trailEnd-1] == ' ' || line[trailEnd-1] == '\t') {
				trailEnd--
			}
			content = line[leadWS:trailEnd]
		}
		cs.leadingWS[i] = leadWS
		cs.startCol[i] = col

		for _, r := range content {
			elems = append(elems, int32(r))
		}
		if i < nLines-1 {
			elems = append(elems, lineBreakSentinel)
		}
	}
	cs.lineStart[nLines] = len(elems)
	cs.elems = elems
	return cs
}

func (cs *CharSequence) Length() int { return len(cs.elems) }

func (cs *CharSequence) Element(i int) int32 { return cs.elems[i] }

// BoundaryScore implements character boundary scoring: the
// sequence's own ends score highest (endBoundaryScore), interior positions
// score via the pinned category-pair weight table (seqs/category.go).
func (cs *CharSequence) BoundaryScore(position int) int {
	if position <= 0 || position >= len(cs.elems) {
		return endBoundaryScore
	}
	a := Classify(cs.elems[position-1])
	b := Classify(cs.elems[position])
	return BoundaryWeight(a, b)
}

// NumLines returns the number of lines spanned by cs.
func (cs *CharSequence) NumLines() int { return len(cs.lineStart) - 1 }

// lineOf returns the index i (0-indexed within the span) such that
// lineStart[i] <= offset < lineStart[i+1]: an offset equal to a line's
// start resolves to that line, and any offset at or past the final line's
// start resolves to the final line.
func (cs *CharSequence) lineOf(offset int) int {
	last := cs.NumLines() - 1
	for i := 0; i < last; i++ {
		if offset < cs.lineStart[i+1] {
			return i
		}
	}
	return last
}

// TranslateOffset maps a code-point offset in [0, Length()] back to a
// (line, column) Position in the original buffer.
func (cs *CharSequence) TranslateOffset(offset int, pref Preference) pos.Position {
	if cs.NumLines() == 0 {
		return pos.Position{Line: cs.rangeStartLine, Column: 1}
	}
	i := cs.lineOf(offset)
	lineOffset := offset - cs.lineStart[i]
	column := cs.startCol[i] + lineOffset
	if !(lineOffset == 0 && pref == PreferLeft) {
		column += cs.leadingWS[i]
	}
	return pos.Position{Line: cs.rangeStartLine + i, Column: column}
}

// TranslateRange maps a half-open [start, end) code-point offset range
// back to a pos.Range, using PreferRight for the start offset and
// PreferLeft for the end offset, collapsing to the end
// point if the naive translation would produce an inverted range.
func (cs *CharSequence) TranslateRange(start, end int) pos.Range {
	startPos := cs.TranslateOffset(start, PreferRight)
	endPos := cs.TranslateOffset(end, PreferLeft)
	if endPos.Less(startPos) {
		return pos.Range{Start: endPos, End: endPos}
	}
	return pos.Range{Start: startPos, End: endPos}
}
