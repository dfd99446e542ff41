package editordiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dknieriem/editordiff"
)

func TestComputeLocalizesSingleCharChange(t *testing.T) {
	res, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"hello"},
		Modified: []string{"hallo"},
	})
	require.NoError(t, err)
	assert.False(t, res.HitTimeout)
	require.Len(t, res.Changes, 1)

	change := res.Changes[0]
	assert.Equal(t, 1, change.Original.Start)
	assert.Equal(t, 2, change.Original.EndExclusive)
	require.Len(t, change.InnerChanges, 1)
	assert.Equal(t, 2, change.InnerChanges[0].Original.Start.Column)
	assert.Equal(t, 3, change.InnerChanges[0].Original.End.Column)
}

func TestComputeInsertedLine(t *testing.T) {
	res, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"line1", "line3"},
		Modified: []string{"line1", "line2", "line3"},
	})
	require.NoError(t, err)
	require.Len(t, res.Changes, 1)
	change := res.Changes[0]
	assert.True(t, change.Original.Empty())
	assert.Equal(t, 2, change.Modified.Start)
	assert.Equal(t, 3, change.Modified.EndExclusive)
}

func TestComputeRejectsComputeMoves(t *testing.T) {
	_, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"a"},
		Modified: []string{"a"},
		Options:  editordiff.DiffOptions{ComputeMoves: true},
	})
	assert.ErrorIs(t, err, editordiff.ErrComputeMovesUnsupported)
}

func TestComputeLeadingWhitespaceOnlyChangeSurfacesViaRescan(t *testing.T) {
	res, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"    code"},
		Modified: []string{"        code"},
	})
	require.NoError(t, err)
	require.Len(t, res.Changes, 1)

	change := res.Changes[0]
	assert.Equal(t, 1, change.Original.Start)
	assert.Equal(t, 2, change.Original.EndExclusive)
	assert.Equal(t, 1, change.Modified.Start)
	assert.Equal(t, 2, change.Modified.EndExclusive)
	require.Len(t, change.InnerChanges, 1)
	assert.Equal(t, 1, change.InnerChanges[0].Original.Start.Column)
	assert.Equal(t, 5, change.InnerChanges[0].Original.End.Column)
	assert.Equal(t, 1, change.InnerChanges[0].Modified.Start.Column)
	assert.Equal(t, 9, change.InnerChanges[0].Modified.End.Column)
}

func TestComputeIgnoreTrimWhitespaceSuppressesRescan(t *testing.T) {
	res, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"    code"},
		Modified: []string{"        code"},
		Options:  editordiff.DiffOptions{IgnoreTrimWhitespace: true},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Changes)
}

func TestComputeIdenticalInputsProduceNoChanges(t *testing.T) {
	res, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"a", "b", "c"},
		Modified: []string{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Changes)
}

func TestComputeWhitespaceRescanBetweenDiffs(t *testing.T) {
	// A gap wide enough (3 lines, each with substantial trimmed content)
	// to survive both RemoveShortMatches and
	// RemoveVeryShortMatchingLinesBetweenDiffs, so it reaches whitespace
	// rescan as a genuine equal region rather than being coalesced into
	// one of the neighboring line diffs.
	res, err := editordiff.Compute(editordiff.DiffInput{
		Original: []string{"foo", "  middleA", "middleB", "middleC", "barOld"},
		Modified: []string{"fooX", "    middleA", "middleB", "middleC", "barNew"},
	})
	require.NoError(t, err)
	require.Len(t, res.Changes, 3)

	ws := res.Changes[1]
	assert.Equal(t, 2, ws.Original.Start)
	assert.Equal(t, 2, ws.Modified.Start)
	require.Len(t, ws.InnerChanges, 1)
	assert.Equal(t, 1, ws.InnerChanges[0].Original.Start.Column)
	assert.Equal(t, 3, ws.InnerChanges[0].Original.End.Column)
	assert.Equal(t, 1, ws.InnerChanges[0].Modified.Start.Column)
	assert.Equal(t, 5, ws.InnerChanges[0].Modified.End.Column)
}
