package main

import (
	"bytes"
	"html"
	"strings"

	"github.com/dknieriem/editordiff"
	"github.com/dknieriem/editordiff/pos"
)

// lineKind classifies how one line participates in a LinesDiff, adapted
// from the three-way Operation (delete/insert/equal) used for flat
// rune-level diffs into the four cases a line-level mapping can take: a
// line can also be modified in place, with both an original and a
// modified counterpart plus inner highlight ranges.
type lineKind int

const (
	lineEqual lineKind = iota
	lineDeleted
	lineInserted
	lineModified
)

// RenderSideBySide turns a LinesDiff, plus the two buffers it was computed
// from, into two HTML fragments: one per pane of a side-by-side view.
// Equal lines render as plain spans; deleted/inserted/modified lines get
// a background tint, and a modified line's inner RangeMappings are
// additionally wrapped in <mark> so the exact changed characters stand
// out within the tinted line.
func RenderSideBySide(original, modified []string, diff editordiff.LinesDiff) (originalHTML, modifiedHTML string) {
	origKind, origInner := lineAnnotations(original, diff, true)
	modKind, modInner := lineAnnotations(modified, diff, false)

	return renderPane(original, origKind, origInner), renderPane(modified, modKind, modInner)
}

// lineAnnotations computes, for every line index on one side, its kind
// and any inner highlight ranges (columns, 1-indexed, half-open) that
// fall on that line.
func lineAnnotations(lines []string, diff editordiff.LinesDiff, side bool) ([]lineKind, map[int][]pos.Range) {
	kinds := make([]lineKind, len(lines))
	inner := make(map[int][]pos.Range)

	for _, change := range diff.Changes {
		rng := change.Original
		if !side {
			rng = change.Modified
		}
		kind := lineModified
		switch {
		case change.Original.Empty():
			kind = lineInserted
		case change.Modified.Empty():
			kind = lineDeleted
		}
		for line := rng.Start; line < rng.EndExclusive; line++ {
			kinds[line-1] = kind
		}
		for _, m := range change.InnerChanges {
			r := m.Original
			if !side {
				r = m.Modified
			}
			if r.Start.Line == r.End.Line {
				inner[r.Start.Line] = append(inner[r.Start.Line], pos.Range{Start: r.Start, End: r.End})
			}
		}
	}
	return kinds, inner
}

func renderPane(lines []string, kinds []lineKind, inner map[int][]pos.Range) string {
	var buffer bytes.Buffer
	for i, line := range lines {
		lineNum := i + 1
		content := escapeLine(line)
		if kinds[i] == lineModified {
			content = highlightLine(line, inner[lineNum])
		}
		switch kinds[i] {
		case lineInserted:
			buffer.WriteString(`<ins style="background:#e6ffe6;">`)
			buffer.WriteString(content)
			buffer.WriteString("</ins>")
		case lineDeleted:
			buffer.WriteString(`<del style="background:#ffe6e6;">`)
			buffer.WriteString(content)
			buffer.WriteString("</del>")
		case lineModified:
			buffer.WriteString(`<span style="background:#fff5cc;">`)
			buffer.WriteString(content)
			buffer.WriteString("</span>")
		default:
			buffer.WriteString("<span>")
			buffer.WriteString(content)
			buffer.WriteString("</span>")
		}
		buffer.WriteString("<br>")
	}
	return buffer.String()
}

// highlightLine escapes line and wraps each inner range (1-indexed
// columns) in <mark>, in column order; ranges are assumed non-overlapping
// since LinesDiff guarantees sorted, non-overlapping inner mappings.
func highlightLine(line string, ranges []pos.Range) string {
	if len(ranges) == 0 {
		return escapeLine(line)
	}
	runes := []rune(line)
	var buffer bytes.Buffer
	prev := 0
	for _, r := range ranges {
		start, end := r.Start.Column-1, r.End.Column-1
		if start > len(runes) {
			start = len(runes)
		}
		if end > len(runes) {
			end = len(runes)
		}
		buffer.WriteString(escapeLine(string(runes[prev:start])))
		buffer.WriteString("<mark>")
		buffer.WriteString(escapeLine(string(runes[start:end])))
		buffer.WriteString("</mark>")
		prev = end
	}
	buffer.WriteString(escapeLine(string(runes[prev:])))
	return buffer.String()
}

func escapeLine(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\r", "&para;")
}
