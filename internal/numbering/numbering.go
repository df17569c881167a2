// Package numbering validates and repairs sequential section numbering.
// Canonical numbers are a pure function of tree position: consecutive
// ordinals within each parent, concatenated with the parent's number. The
// TOC section consumes no slot and never receives a number.
package numbering

import (
	"fmt"
	"strconv"

	"github.com/itsmostafa/mdstruct/internal/document"
)

// IssueKind classifies a numbering mismatch.
type IssueKind string

const (
	MissingNumber IssueKind = "missing_number"
	WrongNumber   IssueKind = "wrong_number"
)

// Issue is one mismatch between a section's written number and its
// canonical number.
type Issue struct {
	SectionTitle string
	Expected     string
	Actual       string // "" when the number is absent
	Line         int    // 1-based heading line
	Kind         IssueKind
}

// Message renders a human-readable description of the issue.
func (i Issue) Message() string {
	if i.Kind == MissingNumber {
		return fmt.Sprintf("Section %q is missing a number (expected: %s)", i.SectionTitle, i.Expected)
	}
	return fmt.Sprintf("Section %q has wrong number %q (expected: %s)", i.SectionTitle, i.Actual, i.Expected)
}

// Result of a validation pass.
type Result struct {
	Valid           bool
	Issues          []Issue
	Recommendations []string
}

// Report summarizes a renumber pass.
type Report struct {
	SectionsRenumbered int
	TOCSkipped         bool
}

// Canonical computes the expected number for every numbered-eligible section
// (everything except the title and the TOC subtree), keyed by arena index.
func Canonical(t *document.Tree) map[int]string {
	expected := make(map[int]string)
	var walk func(ids []int, prefix string)
	walk = func(ids []int, prefix string) {
		n := 0
		for _, id := range ids {
			if t.Sections[id].IsTOC {
				continue
			}
			n++
			num := prefix + strconv.Itoa(n)
			expected[id] = num
			walk(t.Sections[id].Children, num+".")
		}
	}
	walk(t.Roots, "")
	return expected
}

// Validate compares written numbers against canonical numbers. It never
// mutates the tree; mismatches come back as data, not errors.
func Validate(t *document.Tree) Result {
	expected := Canonical(t)

	var issues []Issue
	for _, id := range t.Order() {
		want, ok := expected[id]
		if !ok {
			continue
		}
		s := &t.Sections[id]
		if s.Number == want {
			continue
		}
		kind := WrongNumber
		if s.Number == "" {
			kind = MissingNumber
		}
		issues = append(issues, Issue{
			SectionTitle: s.Title,
			Expected:     want,
			Actual:       s.Number,
			Line:         s.StartLine + 1,
			Kind:         kind,
		})
	}

	var recs []string
	if len(issues) > 0 {
		recs = append(recs, "Run 'renumber' to fix section numbering.")
	}
	return Result{Valid: len(issues) == 0, Issues: issues, Recommendations: recs}
}

// Renumber assigns every numbered-eligible section its canonical number and
// rewrites the heading lines. Only heading prefixes change, so line ranges
// are unaffected. Renumbering a structurally valid tree never fails and is
// idempotent.
func Renumber(t *document.Tree) (*document.Tree, Report) {
	expected := Canonical(t)

	lines := make([]string, len(t.Lines))
	copy(lines, t.Lines)
	changed := 0
	for id, num := range expected {
		s := &t.Sections[id]
		if s.Number != num {
			changed++
		}
		lines[s.StartLine] = document.HeadingLine(s.Level, num, s.Title)
	}

	return t.Reparse(lines), Report{
		SectionsRenumbered: changed,
		TOCSkipped:         t.HasTOC(),
	}
}
