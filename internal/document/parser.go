package document

import (
	"regexp"
	"strings"
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

	// Subsection numbers ("1.1", "2.3.4", optional trailing period) are tried
	// before root numbers ("1.") so "1.1 Overview" is not read as root "1"
	// with title "1 Overview".
	subsectionNumberPattern = regexp.MustCompile(`^(\d+(?:\.\d+)+)\.?\s+(.+)$`)
	rootNumberPattern       = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

	tocTitlePattern = regexp.MustCompile(`(?i)^table\s+of\s+contents$`)
)

const tocCanonicalTitle = "Table of Contents"

// Parse scans document text and builds the section tree. It never fails:
// malformed input at worst yields unnumbered sections, and a document without
// headings yields an empty tree whose Content round-trips the input.
func Parse(content string, opts ...Option) *Tree {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree{
		Lines:     strings.Split(content, "\n"),
		TitleID:   -1,
		TOCID:     -1,
		strictTOC: cfg.strictTOC,
	}

	type open struct{ id, level int }
	var stack []open

	for i, line := range t.Lines {
		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		level := len(m[1])
		text := strings.TrimSpace(m[2])

		if level == 1 {
			// First h1 is the document title; it sits beside the section
			// tree, not above it. Any further h1 lines are opaque content.
			if t.TitleID == -1 {
				t.Sections = append(t.Sections, Section{
					Level:     1,
					Title:     text,
					StartLine: i,
					EndLine:   len(t.Lines),
					Parent:    -1,
				})
				t.TitleID = len(t.Sections) - 1
			}
			continue
		}

		number, title := splitNumber(text)

		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			t.Sections[stack[len(stack)-1].id].EndLine = i
			stack = stack[:len(stack)-1]
		}

		parent := -1
		if len(stack) > 0 {
			parent = stack[len(stack)-1].id
		}

		sec := Section{
			Level:     level,
			Number:    number,
			Title:     title,
			StartLine: i,
			EndLine:   len(t.Lines),
			Parent:    parent,
		}
		if number == "" && t.TOCID == -1 && t.matchesTOCTitle(title) {
			sec.IsTOC = true
		}

		t.Sections = append(t.Sections, sec)
		id := len(t.Sections) - 1
		if sec.IsTOC {
			t.TOCID = id
		}
		if parent >= 0 {
			t.Sections[parent].Children = append(t.Sections[parent].Children, id)
		} else {
			t.Roots = append(t.Roots, id)
		}
		stack = append(stack, open{id: id, level: level})
	}

	// Title range ends where the first section begins.
	if t.TitleID >= 0 {
		title := &t.Sections[t.TitleID]
		for _, id := range t.Roots {
			if t.Sections[id].StartLine > title.StartLine {
				title.EndLine = t.Sections[id].StartLine
				break
			}
		}
	}

	return t
}

// Reparse rebuilds a tree from new lines using the same parse policy. Used
// by transforms to re-derive ranges and parent links after a line splice.
func (t *Tree) Reparse(lines []string) *Tree {
	var opts []Option
	if t.strictTOC {
		opts = append(opts, WithStrictTOCMatch(true))
	}
	return Parse(strings.Join(lines, "\n"), opts...)
}

func (t *Tree) matchesTOCTitle(title string) bool {
	if t.strictTOC {
		return title == tocCanonicalTitle
	}
	return tocTitlePattern.MatchString(title)
}

// splitNumber extracts a leading hierarchical number from heading text.
func splitNumber(text string) (number, title string) {
	if m := subsectionNumberPattern.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	if m := rootNumberPattern.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	return "", text
}
