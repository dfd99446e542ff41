package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dknieriem/editordiff/intern"
	"github.com/dknieriem/editordiff/seqs"
)

func TestLineSequenceIdentityOnEqualTrimmedLines(t *testing.T) {
	tbl := intern.New(0)
	ls := seqs.NewLineSequence(tbl, []string{"foo", "  foo", "foo  ", "bar"})
	assert.Equal(t, ls.Element(0), ls.Element(1))
	assert.Equal(t, ls.Element(0), ls.Element(2))
	assert.NotEqual(t, ls.Element(0), ls.Element(3))
}

func TestLineSequenceBoundaryScoreFormula(t *testing.T) {
	tbl := intern.New(0)
	// A = ["{", "  x", "    y", "}"]: the boundary between the two
	// indented lines is less natural (both sides indented) than the
	// boundary next to the brace (one side unindented).
	ls := seqs.NewLineSequence(tbl, []string{"{", "  x", "    y", "}"})
	scoreAtBraceBoundary := ls.BoundaryScore(1) // between "{" and "  x"
	scoreBetweenIndentedLines := ls.BoundaryScore(2)
	assert.Greater(t, scoreAtBraceBoundary, scoreBetweenIndentedLines)
}

func TestLineSequenceLength(t *testing.T) {
	tbl := intern.New(0)
	ls := seqs.NewLineSequence(tbl, []string{"a", "b", "c"})
	assert.Equal(t, 3, ls.Length())
}
