// Package toc derives and maintains the table-of-contents section. TOC
// entries are generated from the section tree; the TOC itself is never
// numbered and always lives after the document title, before the first root
// section.
package toc

import (
	"strings"

	"github.com/itsmostafa/mdstruct/internal/document"
)

// DefaultDepth includes root sections and one level of subsections
// (levels 2 and 3).
const DefaultDepth = 2

const tocHeading = "## Table of Contents"

// Report summarizes a TOC mutation.
type Report struct {
	Action  string // "created", "updated", "removed", "not_found"
	Entries int
	Depth   int
}

// Validation compares the TOC's current entries against the tree.
type Validation struct {
	Valid   bool
	HasTOC  bool
	Missing []string // entries that should exist but don't
	Stale   []string // entries present but matching no current section
}

// Update creates or refreshes the TOC at its canonical position. An existing
// TOC found elsewhere in the document is relocated. A document with no
// headings gets an empty TOC rather than an error.
func Update(t *document.Tree, depth int) (*document.Tree, Report) {
	if depth <= 0 {
		depth = DefaultDepth
	}

	action := "created"
	if t.HasTOC() {
		action = "updated"
		t = t.Reparse(spliceOut(t.Lines, t.Sections[t.TOCID].StartLine, t.Sections[t.TOCID].EndLine))
	}

	entries := entryLines(t, depth)

	block := make([]string, 0, len(entries)+3)
	block = append(block, tocHeading, "")
	if len(entries) > 0 {
		block = append(block, entries...)
		block = append(block, "")
	}

	pos := insertPosition(t)
	lines := make([]string, 0, len(t.Lines)+len(block))
	lines = append(lines, t.Lines[:pos]...)
	lines = append(lines, block...)
	lines = append(lines, t.Lines[pos:]...)

	return t.Reparse(lines), Report{Action: action, Entries: len(entries), Depth: depth}
}

// Remove deletes the TOC section's full range, collapsing any blank-line run
// at the seam down to a single blank line.
func Remove(t *document.Tree) (*document.Tree, Report) {
	if !t.HasTOC() {
		return t, Report{Action: "not_found"}
	}
	sec := t.Sections[t.TOCID]
	return t.Reparse(spliceOut(t.Lines, sec.StartLine, sec.EndLine)), Report{Action: "removed"}
}

// Validate reports entries the TOC is missing and entries that no longer
// match any section. The TOC's own text is preserved for comparison, not
// re-derived.
func Validate(t *document.Tree, depth int) Validation {
	if depth <= 0 {
		depth = DefaultDepth
	}
	if !t.HasTOC() {
		return Validation{Valid: true}
	}

	sec := t.Sections[t.TOCID]
	var actual []string
	for i := sec.StartLine + 1; i < sec.EndLine && i < len(t.Lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(t.Lines[i]), "- ") {
			actual = append(actual, t.Lines[i])
		}
	}

	expected := entryLines(t, depth)

	v := Validation{HasTOC: true}
	for _, want := range expected {
		if !containsLine(actual, want) {
			v.Missing = append(v.Missing, entryText(want))
		}
	}
	for _, got := range actual {
		if !containsLine(expected, got) {
			v.Stale = append(v.Stale, entryText(got))
		}
	}
	v.Valid = len(v.Missing) == 0 && len(v.Stale) == 0
	return v
}

// entryLines collects, in document order, every non-title section at most
// depth levels below the root level, excluding the TOC subtree, and renders
// one indented entry per section.
func entryLines(t *document.Tree, depth int) []string {
	var lines []string
	var walk func(ids []int)
	walk = func(ids []int) {
		for _, id := range ids {
			s := &t.Sections[id]
			if s.IsTOC {
				continue
			}
			if s.Level-1 <= depth {
				indent := strings.Repeat("  ", s.Level-2)
				label := s.Title
				if s.Number != "" {
					label = document.NumberLabel(s.Level, s.Number) + " " + s.Title
				}
				lines = append(lines, indent+"- "+label)
			}
			walk(s.Children)
		}
	}
	walk(t.Roots)
	return lines
}

// insertPosition finds the canonical TOC position: after the title heading
// and the blank run that follows it, or the top of the document when there
// is no title.
func insertPosition(t *document.Tree) int {
	if t.TitleID < 0 {
		return 0
	}
	pos := t.Sections[t.TitleID].StartLine + 1
	for pos < len(t.Lines) && strings.TrimSpace(t.Lines[pos]) == "" {
		pos++
	}
	return pos
}

// spliceOut removes lines[start:end] and collapses consecutive blank lines
// at the seam to at most one.
func spliceOut(lines []string, start, end int) []string {
	out := make([]string, 0, len(lines)-(end-start))
	out = append(out, lines[:start]...)
	out = append(out, lines[end:]...)
	for start > 0 && start < len(out) &&
		strings.TrimSpace(out[start]) == "" && strings.TrimSpace(out[start-1]) == "" {
		out = append(out[:start], out[start+1:]...)
	}
	return out
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func entryText(line string) string {
	return strings.TrimPrefix(strings.TrimSpace(line), "- ")
}
