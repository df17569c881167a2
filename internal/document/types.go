// Package document implements the section model and structural parser for
// heading-structured markdown documents.
//
// A parsed Tree owns every Section in a flat arena; parent/child links are
// arena indices, so structural operations re-parent nodes by rewriting
// indices instead of copying subtrees.
package document

import (
	"fmt"
	"strings"
)

// Section is one node of the document tree: a heading line plus the body and
// nested subsections that follow it.
type Section struct {
	Level     int    // 1 for the document title, 2-6 for sections
	Number    string // hierarchical label like "3.2.1", "" if unnumbered
	Title     string // heading text with any leading number stripped
	StartLine int    // 0-indexed line of the heading
	EndLine   int    // exclusive; where the next sibling-or-higher heading begins
	Parent    int    // arena index of the parent, -1 for roots
	Children  []int  // arena indices of immediate subsections, in document order
	IsTOC     bool
}

// Tree is the parsed document: the line buffer plus the section arena.
type Tree struct {
	Sections []Section
	Roots    []int // non-title root sections in document order
	TitleID  int   // arena index of the level-1 title, -1 if absent
	TOCID    int   // arena index of the TOC section, -1 if absent

	Lines []string

	strictTOC bool
}

// Option configures parsing.
type Option func(*parseConfig)

type parseConfig struct {
	strictTOC bool
}

// WithStrictTOCMatch makes TOC recognition case-sensitive. The default is a
// case-insensitive match against "Table of Contents".
func WithStrictTOCMatch(strict bool) Option {
	return func(c *parseConfig) { c.strictTOC = strict }
}

// Content serializes the tree back to document text. A freshly parsed,
// unmutated tree reproduces its input exactly.
func (t *Tree) Content() string {
	return strings.Join(t.Lines, "\n")
}

// Section returns the section at the given arena index.
func (t *Tree) Section(id int) *Section {
	return &t.Sections[id]
}

// HasTOC reports whether a table-of-contents section was recognized.
func (t *Tree) HasTOC() bool { return t.TOCID >= 0 }

// DocumentTitle returns the text of the level-1 title heading, or "".
func (t *Tree) DocumentTitle() string {
	if t.TitleID < 0 {
		return ""
	}
	return t.Sections[t.TitleID].Title
}

// Order returns all non-title sections in pre-order, which by construction
// equals document line order.
func (t *Tree) Order() []int {
	var ids []int
	var walk func([]int)
	walk = func(children []int) {
		for _, id := range children {
			ids = append(ids, id)
			walk(t.Sections[id].Children)
		}
	}
	walk(t.Roots)
	return ids
}

// Descendants returns every section strictly below id, in document order.
func (t *Tree) Descendants(id int) []int {
	var ids []int
	var walk func([]int)
	walk = func(children []int) {
		for _, c := range children {
			ids = append(ids, c)
			walk(t.Sections[c].Children)
		}
	}
	walk(t.Sections[id].Children)
	return ids
}

// Subtree returns id followed by all of its descendants.
func (t *Tree) Subtree(id int) []int {
	return append([]int{id}, t.Descendants(id)...)
}

// Contains reports whether other lies inside the subtree rooted at id.
func (t *Tree) Contains(id, other int) bool {
	for p := other; p >= 0; p = t.Sections[p].Parent {
		if p == id {
			return true
		}
	}
	return false
}

// FullTitle renders a section's display name, number included when present.
func (t *Tree) FullTitle(id int) string {
	s := &t.Sections[id]
	if s.Number == "" {
		return s.Title
	}
	return NumberLabel(s.Level, s.Number) + " " + s.Title
}

// NumberLabel renders a section number the way it appears in a heading:
// root-level (level 2) numbers carry a trailing period, deeper ones do not.
func NumberLabel(level int, number string) string {
	if level == 2 {
		return number + "."
	}
	return number
}

// HeadingLine builds a heading line with the per-level number formatting.
func HeadingLine(level int, number, title string) string {
	hashes := strings.Repeat("#", level)
	if number == "" {
		return hashes + " " + title
	}
	return fmt.Sprintf("%s %s %s", hashes, NumberLabel(level, number), title)
}
