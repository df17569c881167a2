package format

import (
	"strings"
	"unicode/utf8"
)

// Issue is a single lint finding. Rule IDs follow the common markdown lint
// numbering so reports stay recognizable.
type Issue struct {
	Line     int // 1-based
	Column   int // 1-based
	RuleID   string
	RuleName string
	Message  string
	Fixable  bool
}

// LintResult is the outcome of a scan.
type LintResult struct {
	Issues []Issue
}

// HasIssues reports whether the scan found anything.
func (r LintResult) HasIssues() bool { return len(r.Issues) > 0 }

// FixResult is the outcome of an auto-fix pass.
type FixResult struct {
	Fixed      bool
	Content    string
	FixedCount int
	Remaining  []Issue
}

// Lint scans content for markdown issues. Lines inside code fences are
// exempt from everything but the hard-tab check.
func Lint(content string) LintResult {
	if content == "" {
		return LintResult{}
	}

	var issues []Issue
	lines := strings.Split(content, "\n")
	inFence := false
	prevBlank := false

	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)

		if col := strings.IndexByte(line, '\t'); col >= 0 {
			issues = append(issues, Issue{
				Line: lineNo, Column: col + 1,
				RuleID: "MD010", RuleName: "no-hard-tabs",
				Message: "Hard tabs", Fixable: true,
			})
		}

		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			prevBlank = false
			continue
		}

		if inFence {
			prevBlank = false
			continue
		}

		if stripped := strings.TrimRight(line, " "); stripped != line {
			issues = append(issues, Issue{
				Line: lineNo, Column: len(stripped) + 1,
				RuleID: "MD009", RuleName: "no-trailing-spaces",
				Message: "Trailing spaces", Fixable: true,
			})
		}

		blank := trimmed == ""
		if blank && prevBlank {
			issues = append(issues, Issue{
				Line: lineNo, Column: 1,
				RuleID: "MD012", RuleName: "no-multiple-blanks",
				Message: "Multiple consecutive blank lines", Fixable: true,
			})
		}
		prevBlank = blank

		if n := utf8.RuneCountInString(line); n > DefaultWidth {
			issues = append(issues, Issue{
				Line: lineNo, Column: DefaultWidth + 1,
				RuleID: "MD013", RuleName: "line-length",
				Message: "Line length exceeds 80 characters", Fixable: false,
			})
		}
	}

	if !strings.HasSuffix(content, "\n") {
		issues = append(issues, Issue{
			Line: len(lines), Column: 1,
			RuleID: "MD047", RuleName: "single-trailing-newline",
			Message: "File should end with a single newline", Fixable: true,
		})
	}

	return LintResult{Issues: issues}
}

// Fix applies every fixable rule (tabs, trailing spaces, blank-line runs,
// final newline), then re-scans and reports what remains.
func Fix(content string) FixResult {
	if content == "" {
		return FixResult{Content: ""}
	}

	before := Lint(content)

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	prevBlank := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		line = strings.ReplaceAll(line, "\t", "    ")
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			out = append(out, line)
			prevBlank = false
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		line = strings.TrimRight(line, " ")
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}

	fixed := strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"

	remaining := Lint(fixed).Issues
	fixedCount := len(before.Issues) - len(remaining)
	if fixedCount < 0 {
		fixedCount = 0
	}
	return FixResult{
		Fixed:      fixed != content,
		Content:    fixed,
		FixedCount: fixedCount,
		Remaining:  remaining,
	}
}
