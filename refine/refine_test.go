package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/refine"
)

func TestLineDiffLocalizesSingleCharChange(t *testing.T) {
	original := []string{"hello"}
	modified := []string{"hallo"}
	d := algo.SequenceDiff{Start1: 0, End1: 1, Start2: 0, End2: 1}
	res := refine.LineDiff(d, original, modified, algo.NoDeadline(), false)
	assert.False(t, res.HitTimeout)
	assert.Len(t, res.Inner, 1)
	inner := res.Inner[0]
	assert.Equal(t, 1, inner.Original.Start.Line)
	assert.Equal(t, 2, inner.Original.Start.Column)
	assert.Equal(t, 3, inner.Original.End.Column)
	assert.Equal(t, 2, inner.Modified.Start.Column)
	assert.Equal(t, 3, inner.Modified.End.Column)
}

func TestLineDiffExtendsToWholeWord(t *testing.T) {
	original := []string{"class MyOldClassName { }"}
	modified := []string{"class MyNewClassName { }"}
	d := algo.SequenceDiff{Start1: 0, End1: 1, Start2: 0, End2: 1}
	res := refine.LineDiff(d, original, modified, algo.NoDeadline(), false)
	assert.Len(t, res.Inner, 1)
	inner := res.Inner[0]
	origWord := original[0][inner.Original.Start.Column-1 : inner.Original.End.Column-1]
	modWord := modified[0][inner.Modified.Start.Column-1 : inner.Modified.End.Column-1]
	assert.Equal(t, "Old", origWord)
	assert.Equal(t, "New", modWord)
}

func TestLineDiffLocalizesLeadingWhitespaceChange(t *testing.T) {
	original := []string{"    code"}
	modified := []string{"        code"}
	d := algo.SequenceDiff{Start1: 0, End1: 1, Start2: 0, End2: 1}
	res := refine.LineDiff(d, original, modified, algo.NoDeadline(), false)
	// A whitespace-only delta on an otherwise-identical trimmed line is
	// handled by whitespace rescan, not character refinement (refinement
	// trims whitespace away before diffing), so no inner change survives
	// here.
	assert.Empty(t, res.Inner)
}

func TestLineDiffPureInsertionDoesNotHitTimeout(t *testing.T) {
	original := []string{"line1", "line3"}
	modified := []string{"line1", "line2", "line3"}
	d := algo.SequenceDiff{Start1: 1, End1: 1, Start2: 1, End2: 2}
	res := refine.LineDiff(d, original, modified, algo.NoDeadline(), false)
	assert.False(t, res.HitTimeout)
}
