// Package format is the formatting and linting collaborator: paragraph
// rewrapping, rule-based lint scanning, and auto-fixing. It is a pure
// text-in/text-out service; the structural engine only relays its reports.
package format

import (
	"regexp"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the rewrap target when none is configured.
const DefaultWidth = 80

// RewrapResult holds the rewrapped document text.
type RewrapResult struct {
	Content  string
	Modified bool
}

var orderedItemPattern = regexp.MustCompile(`^\d+[.)]\s`)

// Rewrap normalizes paragraph line lengths. Headings, lists, block quotes,
// tables, and fenced or indented code pass through untouched; consecutive
// plain-text lines are joined and wrapped to width.
func Rewrap(content string, width int) RewrapResult {
	if width <= 0 {
		width = DefaultWidth
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		wrapped := wordwrap.String(strings.Join(para, " "), width)
		out = append(out, strings.Split(wrapped, "\n")...)
		para = nil
	}

	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"):
			flush()
			inFence = !inFence
			out = append(out, line)
		case inFence:
			out = append(out, line)
		case trimmed == "":
			flush()
			out = append(out, line)
		case structural(line, trimmed):
			flush()
			out = append(out, line)
		default:
			para = append(para, trimmed)
		}
	}
	flush()

	result := strings.Join(out, "\n")
	return RewrapResult{Content: result, Modified: result != content}
}

// structural reports lines that must never be joined into a paragraph.
func structural(line, trimmed string) bool {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}
	switch {
	case strings.HasPrefix(trimmed, "#"),
		strings.HasPrefix(trimmed, ">"),
		strings.HasPrefix(trimmed, "- "),
		strings.HasPrefix(trimmed, "* "),
		strings.HasPrefix(trimmed, "+ "),
		strings.HasPrefix(trimmed, "|"):
		return true
	}
	return orderedItemPattern.MatchString(trimmed)
}
