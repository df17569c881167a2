// Package section implements structural edits on the document tree: move,
// insert, delete, promote, demote. Every operation is a single atomic
// transform expressed as a line-range splice: it either fully commits and
// returns a freshly re-derived tree, or fails before touching anything.
//
// Operations leave section numbers intentionally stale; callers batch edits
// and renumber once at the end.
package section

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/mdstruct/internal/document"
)

// Position places a section relative to its target.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// StaleReminder is returned with every successful operation.
const StaleReminder = "Section numbers are now stale. Run 'renumber' once all structural changes are complete."

// Result describes a completed operation.
type Result struct {
	Section          string // full title of the section operated on
	Position         string // e.g. `before "5. Implementation Plan"`, move/insert only
	NewLevel         int    // promote/demote/insert
	ChildrenAffected int
	RenumberRecommended bool
	Reminder            string
}

func done(r Result) Result {
	r.RenumberRecommended = true
	r.Reminder = StaleReminder
	return r
}

// Move splices a section's full range (heading, body, descendants) before or
// after the target section's range. The moved section keeps its level and
// children; only its position changes.
func Move(t *document.Tree, sectionRef string, pos Position, targetRef string) (*document.Tree, Result, error) {
	src, err := t.Resolve(sectionRef)
	if err != nil {
		return nil, Result{}, err
	}
	dst, err := t.Resolve(targetRef)
	if err != nil {
		return nil, Result{}, err
	}
	if src == dst {
		return nil, Result{}, &document.InvalidOperationError{Reason: "cannot move a section relative to itself"}
	}
	if t.Contains(src, dst) {
		return nil, Result{}, &document.InvalidOperationError{Reason: "cannot move a section into its own subtree"}
	}
	if t.Sections[src].IsTOC || t.Sections[dst].IsTOC {
		return nil, Result{}, &document.InvalidOperationError{Reason: "the table of contents is managed by 'toc update' and 'toc remove'"}
	}
	if err := validPosition(pos); err != nil {
		return nil, Result{}, err
	}

	srcStart, srcEnd := t.Sections[src].StartLine, t.Sections[src].EndLine
	insert := t.Sections[dst].StartLine
	if pos == After {
		insert = t.Sections[dst].EndLine
	}

	moved := append([]string(nil), t.Lines[srcStart:srcEnd]...)

	var lines []string
	if srcStart < insert {
		// Source precedes the target: remove first, then insert at the
		// position shifted by the removed span.
		rest := append(append([]string(nil), t.Lines[:srcStart]...), t.Lines[srcEnd:]...)
		insert -= srcEnd - srcStart
		lines = append(append(append([]string(nil), rest[:insert]...), moved...), rest[insert:]...)
	} else {
		// Target precedes the source: insert first, then remove the source
		// range shifted by the inserted span.
		grown := append(append(append([]string(nil), t.Lines[:insert]...), moved...), t.Lines[insert:]...)
		lines = append(grown[:srcStart+len(moved)], grown[srcEnd+len(moved):]...)
	}

	res := done(Result{
		Section:  t.FullTitle(src),
		Position: fmt.Sprintf("%s %q", pos, t.FullTitle(dst)),
	})
	return t.Reparse(lines), res, nil
}

// Insert creates a new empty, unnumbered section next to the target. The
// level must fit the target's context: at most one deeper than the target.
func Insert(t *document.Tree, heading string, level int, pos Position, targetRef string) (*document.Tree, Result, error) {
	if level < 2 || level > 6 {
		return nil, Result{}, &document.InvalidLevelError{Level: level, Reason: "heading level must be 2-6"}
	}
	dst, err := t.Resolve(targetRef)
	if err != nil {
		return nil, Result{}, err
	}
	if t.Sections[dst].IsTOC {
		return nil, Result{}, &document.InvalidOperationError{Reason: "the table of contents is managed by 'toc update' and 'toc remove'"}
	}
	if err := validPosition(pos); err != nil {
		return nil, Result{}, err
	}
	if level > t.Sections[dst].Level+1 {
		return nil, Result{}, &document.InvalidLevelError{
			Level:  level,
			Reason: fmt.Sprintf("no parent exists for level %d next to level-%d section %q", level, t.Sections[dst].Level, t.FullTitle(dst)),
		}
	}

	insert := t.Sections[dst].StartLine
	if pos == After {
		insert = t.Sections[dst].EndLine
	}

	block := []string{"", document.HeadingLine(level, "", heading), ""}
	lines := make([]string, 0, len(t.Lines)+len(block))
	lines = append(lines, t.Lines[:insert]...)
	lines = append(lines, block...)
	lines = append(lines, t.Lines[insert:]...)

	res := done(Result{
		Section:  heading,
		NewLevel: level,
		Position: fmt.Sprintf("%s %q", pos, t.FullTitle(dst)),
	})
	return t.Reparse(lines), res, nil
}

// Delete removes a section and all of its descendants, sweeping trailing
// blank lines, and reports how many descendants went with it.
func Delete(t *document.Tree, sectionRef string) (*document.Tree, Result, error) {
	id, err := t.Resolve(sectionRef)
	if err != nil {
		return nil, Result{}, err
	}

	children := len(t.Descendants(id))
	start, end := t.Sections[id].StartLine, t.Sections[id].EndLine
	for end < len(t.Lines) && strings.TrimSpace(t.Lines[end]) == "" {
		end++
	}

	lines := append(append([]string(nil), t.Lines[:start]...), t.Lines[end:]...)

	res := done(Result{
		Section:          t.FullTitle(id),
		ChildrenAffected: children,
	})
	return t.Reparse(lines), res, nil
}

// Promote shifts a section and every descendant one heading level shallower.
// Level 2 is the minimum; the title level is unreachable.
func Promote(t *document.Tree, sectionRef string) (*document.Tree, Result, error) {
	id, err := t.Resolve(sectionRef)
	if err != nil {
		return nil, Result{}, err
	}
	if t.Sections[id].IsTOC {
		return nil, Result{}, &document.InvalidOperationError{Reason: "the table of contents is managed by 'toc update' and 'toc remove'"}
	}
	if t.Sections[id].Level <= 2 {
		return nil, Result{}, &document.InvalidOperationError{
			Reason: fmt.Sprintf("cannot promote level-%d section %q: level 2 is the minimum", t.Sections[id].Level, t.FullTitle(id)),
		}
	}

	lines := shiftHeadings(t, id, -1)
	res := done(Result{
		Section:          t.FullTitle(id),
		NewLevel:         t.Sections[id].Level - 1,
		ChildrenAffected: len(t.Descendants(id)),
	})
	return t.Reparse(lines), res, nil
}

// Demote shifts a section and every descendant one heading level deeper. The
// section must end up as a child of its preceding sibling; without one the
// demotion would orphan its numbering depth.
func Demote(t *document.Tree, sectionRef string) (*document.Tree, Result, error) {
	id, err := t.Resolve(sectionRef)
	if err != nil {
		return nil, Result{}, err
	}
	sec := t.Sections[id]
	if sec.IsTOC {
		return nil, Result{}, &document.InvalidOperationError{Reason: "the table of contents is managed by 'toc update' and 'toc remove'"}
	}
	if sec.Level >= 6 {
		return nil, Result{}, &document.InvalidOperationError{
			Reason: fmt.Sprintf("cannot demote level-%d section %q: level 6 is the maximum", sec.Level, t.FullTitle(id)),
		}
	}
	for _, d := range t.Descendants(id) {
		if t.Sections[d].Level >= 6 {
			return nil, Result{}, &document.InvalidOperationError{
				Reason: fmt.Sprintf("cannot demote: descendant %q would exceed level 6", t.FullTitle(d)),
			}
		}
	}
	prev := precedingSibling(t, id)
	if prev < 0 || t.Sections[prev].Level != sec.Level {
		return nil, Result{}, &document.InvalidOperationError{
			Reason: fmt.Sprintf("cannot demote %q: no preceding section at level %d to adopt it", t.FullTitle(id), sec.Level),
		}
	}

	lines := shiftHeadings(t, id, 1)
	res := done(Result{
		Section:          t.FullTitle(id),
		NewLevel:         sec.Level + 1,
		ChildrenAffected: len(t.Descendants(id)),
	})
	return t.Reparse(lines), res, nil
}

// shiftHeadings rewrites the heading line of id and every descendant with
// delta more (or fewer) hash marks, preserving the rest of each line so
// stale numbers stay exactly as written.
func shiftHeadings(t *document.Tree, id, delta int) []string {
	lines := make([]string, len(t.Lines))
	copy(lines, t.Lines)
	for _, sid := range t.Subtree(id) {
		line := strings.TrimSpace(lines[t.Sections[sid].StartLine])
		n := 0
		for n < len(line) && line[n] == '#' {
			n++
		}
		rest := strings.TrimLeft(line[n:], " ")
		lines[t.Sections[sid].StartLine] = strings.Repeat("#", n+delta) + " " + rest
	}
	return lines
}

// precedingSibling returns the sibling immediately before id in its parent's
// (or the root list's) child order, or -1.
func precedingSibling(t *document.Tree, id int) int {
	siblings := t.Roots
	if p := t.Sections[id].Parent; p >= 0 {
		siblings = t.Sections[p].Children
	}
	for i, s := range siblings {
		if s == id {
			if i == 0 {
				return -1
			}
			return siblings[i-1]
		}
	}
	return -1
}

func validPosition(pos Position) error {
	if pos != Before && pos != After {
		return &document.InvalidOperationError{Reason: fmt.Sprintf("position must be %q or %q", Before, After)}
	}
	return nil
}
