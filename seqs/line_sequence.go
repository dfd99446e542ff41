package seqs

import "github.com/dknieriem/editordiff/intern"

// LineSequence is the line-level Sequence: each element is the dense id a
// Table assigned to the line's trimmed content. Raw (untrimmed) lines are
// retained alongside the ids to compute indentation for boundary scoring
// and to expose the original text through RawLine.
type LineSequence struct {
	ids []int32
	raw []string
}

// NewLineSequence interns every line of raw (after stripping leading and
// trailing ASCII spaces/tabs) and returns the resulting
// LineSequence.
func NewLineSequence(tbl *intern.Table, raw []string) *LineSequence {
	ids := make([]int32, len(raw))
	for i, line := range raw {
		ids[i] = tbl.GetOrCreate(trimASCIISpaceTab(line))
	}
	return &LineSequence{ids: ids, raw: raw}
}

func (s *LineSequence) Length() int { return len(s.ids) }

func (s *LineSequence) Element(i int) int32 { return s.ids[i] }

// RawLine returns the untrimmed content of line i.
func (s *LineSequence) RawLine(i int) string { return s.raw[i] }

// BoundaryScore implements line boundary scoring:
// 1000 - (indentBefore + indentAfter), where indentX is the leading
// space/tab count of the adjacent line, or 0 at a sequence edge.
func (s *LineSequence) BoundaryScore(position int) int {
	indentBefore := 0
	if position > 0 {
		indentBefore = leadingIndentWidth(s.raw[position-1])
	}
	indentAfter := 0
	if position < len(s.raw) {
		indentAfter = leadingIndentWidth(s.raw[position])
	}
	return 1000 - (indentBefore + indentAfter)
}

func leadingIndentWidth(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func trimASCIISpaceTab(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
