package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dknieriem/editordiff/seqs"
)

func TestBoundaryWeightPinnedValues(t *testing.T) {
	assert.Equal(t, 0, seqs.BoundaryWeight(seqs.CatWordLower, seqs.CatWordLower))
	assert.Equal(t, 14, seqs.BoundaryWeight(seqs.CatWordLower, seqs.CatWhitespace))
	assert.Equal(t, 20, seqs.BoundaryWeight(seqs.CatLineBreak, seqs.CatLineBreak))
}

func TestBoundaryWeightIsSymmetric(t *testing.T) {
	cats := []seqs.Category{
		seqs.CatWordLower, seqs.CatWordUpper, seqs.CatWordNumber,
		seqs.CatWhitespace, seqs.CatLineBreak, seqs.CatOther,
	}
	for _, a := range cats {
		for _, b := range cats {
			assert.Equal(t, seqs.BoundaryWeight(a, b), seqs.BoundaryWeight(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want seqs.Category
	}{
		{"lowercase letter", 'a', seqs.CatWordLower},
		{"uppercase letter", 'A', seqs.CatWordUpper},
		{"digit", '5', seqs.CatWordNumber},
		{"space", ' ', seqs.CatWhitespace},
		{"tab", '\t', seqs.CatWhitespace},
		{"punctuation", '!', seqs.CatOther},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, seqs.Classify(int32(c.r)))
		})
	}
}

func TestClassifyLineBreakSentinel(t *testing.T) {
	cs := seqs.NewCharSequence([]string{"ab", "cd"}, 0, 2, 1, true)
	// element 2 sits between "ab" (0,1) and "cd" (3,4): the synthetic
	// line-break element NewCharSequence inserts between consecutive lines.
	assert.Equal(t, seqs.CatLineBreak, seqs.Classify(cs.Element(2)))
}

func TestIsWord(t *testing.T) {
	assert.True(t, seqs.IsWord(seqs.CatWordLower))
	assert.True(t, seqs.IsWord(seqs.CatWordUpper))
	assert.True(t, seqs.IsWord(seqs.CatWordNumber))
	assert.False(t, seqs.IsWord(seqs.CatWhitespace))
	assert.False(t, seqs.IsWord(seqs.CatLineBreak))
	assert.False(t, seqs.IsWord(seqs.CatOther))
}

func TestIsSubwordBoundary(t *testing.T) {
	assert.True(t, seqs.IsSubwordBoundary(seqs.CatWordLower, seqs.CatWordUpper), "camelCase hump")
	assert.True(t, seqs.IsSubwordBoundary(seqs.CatWordNumber, seqs.CatWordLower), "digit-letter transition")
	assert.False(t, seqs.IsSubwordBoundary(seqs.CatWordLower, seqs.CatWordLower), "same category is not a boundary")
	assert.False(t, seqs.IsSubwordBoundary(seqs.CatWhitespace, seqs.CatWordUpper), "non-word category never qualifies")
}
