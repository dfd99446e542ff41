package algo_test

// Sanity-checks DPDiff's LCS-style alignment against go-difflib, a Go port
// of Python's difflib, on small inputs where a minimum-edit-count
// alignment has a unique answer and the two libraries are expected to
// agree on the total size of the edit script.

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"

	"github.com/dknieriem/editordiff/algo"
	"github.com/dknieriem/editordiff/intern"
)

func changedElementCount(diffs []algo.SequenceDiff) int {
	n := 0
	for _, d := range diffs {
		n += (d.End1 - d.Start1) + (d.End2 - d.Start2)
	}
	return n
}

func difflibChangedElementCount(a, b []string) int {
	matcher := difflib.NewMatcher(a, b)
	n := 0
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		n += (op.I2 - op.I1) + (op.J2 - op.J1)
	}
	return n
}

func TestDPDiffAgreesWithDifflibOnEditSize(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c"}, {"a", "b", "c"}},
		{{"a", "b", "c"}, {"a", "x", "c"}},
		{{"line1", "line2", "line3"}, {"line1", "line3"}},
		{{"line1", "line3"}, {"line1", "line2", "line3"}},
		{{"1", "2", "3", "4", "5"}, {"1", "3", "5"}},
	}
	for _, c := range cases {
		a, b := c[0], c[1]
		tbl := intern.New(0)
		seqA := lineSeq(tbl, a...)
		seqB := lineSeq(tbl, b...)
		res := algo.DPDiff(seqA, seqB, algo.DefaultScore, algo.NoDeadline())
		assert.Equal(t, difflibChangedElementCount(a, b), changedElementCount(res.Diffs), "a=%v b=%v", a, b)
	}
}
