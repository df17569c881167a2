// Package render formats engine reports for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/mdstruct/internal/engine"
	"github.com/itsmostafa/mdstruct/internal/format"
	"github.com/itsmostafa/mdstruct/internal/numbering"
	"github.com/itsmostafa/mdstruct/internal/section"
	"github.com/itsmostafa/mdstruct/internal/toc"
)

var (
	// titleStyle for report headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for validation findings
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for error output
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// numberStyle for section numbers in the outline
	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)
)

// Validation renders the combined numbering and TOC report.
func Validation(w io.Writer, rep engine.ValidationReport) {
	if rep.Valid {
		fmt.Fprintln(w, successStyle.Render("Document structure is valid"))
		return
	}

	if !rep.Numbering.Valid {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Numbering: %d issue(s)", len(rep.Numbering.Issues))))
		for _, issue := range rep.Numbering.Issues {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(fmt.Sprintf("line %d:", issue.Line)), issue.Message())
		}
	}
	if rep.TOC.HasTOC && !rep.TOC.Valid {
		fmt.Fprintln(w, warnStyle.Render("Table of contents is out of date"))
		for _, m := range rep.TOC.Missing {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("missing:"), m)
		}
		for _, s := range rep.TOC.Stale {
			fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("stale:"), s)
		}
	}
	for _, rec := range rep.Recommendations {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("hint:"), rec)
	}
}

// Renumber renders the renumbering summary.
func Renumber(w io.Writer, rep numbering.Report) {
	msg := fmt.Sprintf("Renumbered %d sections", rep.SectionsRenumbered)
	fmt.Fprint(w, successStyle.Render(msg))
	if rep.TOCSkipped {
		fmt.Fprint(w, dimStyle.Render(" (TOC skipped)"))
	}
	fmt.Fprintln(w)
}

// Inspect renders the document outline as an indented tree.
func Inspect(w io.Writer, info engine.DocumentInfo) {
	if info.Title != "" {
		fmt.Fprintln(w, titleStyle.Render(info.Title))
	}
	for _, entry := range info.Outline {
		indent := strings.Repeat("  ", entry.Level-2)
		label := entry.Title
		if entry.Number != "" {
			label = numberStyle.Render(entry.Number) + " " + entry.Title
		}
		span := dimStyle.Render(fmt.Sprintf("(lines %d-%d)", entry.StartLine+1, entry.EndLine))
		fmt.Fprintf(w, "%s%s %s\n", indent, label, span)
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d sections", info.TotalSections)))
	if info.HasTOC {
		fmt.Fprintln(w, dimStyle.Render("table of contents present"))
	}
}

// TOCReport renders the result of a TOC update or removal.
func TOCReport(w io.Writer, rep toc.Report) {
	switch rep.Action {
	case "created":
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Created TOC with %d entries (depth %d)", rep.Entries, rep.Depth)))
	case "updated":
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Updated TOC with %d entries (depth %d)", rep.Entries, rep.Depth)))
	case "removed":
		fmt.Fprintln(w, successStyle.Render("Removed table of contents"))
	default:
		fmt.Fprintln(w, dimStyle.Render("No table of contents found"))
	}
}

// TOCValidation renders the TOC staleness report.
func TOCValidation(w io.Writer, v toc.Validation) {
	if !v.HasTOC {
		fmt.Fprintln(w, dimStyle.Render("No table of contents found"))
		return
	}
	if v.Valid {
		fmt.Fprintln(w, successStyle.Render("Table of contents is up to date"))
		return
	}
	for _, m := range v.Missing {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("missing:"), m)
	}
	for _, s := range v.Stale {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("stale:"), s)
	}
}

// OpResult renders a structural operation summary plus the staleness
// reminder.
func OpResult(w io.Writer, verb string, res section.Result) {
	msg := fmt.Sprintf("%s %q", verb, res.Section)
	fmt.Fprint(w, successStyle.Render(msg))
	if res.Position != "" {
		fmt.Fprintf(w, " %s", dimStyle.Render(res.Position))
	}
	if res.NewLevel > 0 {
		fmt.Fprintf(w, " %s", dimStyle.Render(fmt.Sprintf("(level %d)", res.NewLevel)))
	}
	if res.ChildrenAffected > 0 {
		fmt.Fprintf(w, " %s", dimStyle.Render(fmt.Sprintf("(%d children)", res.ChildrenAffected)))
	}
	fmt.Fprintln(w)
	if res.RenumberRecommended {
		fmt.Fprintln(w, warnStyle.Render(res.Reminder))
	}
}

// Rewrap renders the rewrap outcome.
func Rewrap(w io.Writer, res format.RewrapResult, width int) {
	switch {
	case !res.Modified:
		fmt.Fprintln(w, dimStyle.Render("No changes needed"))
	case width > 0:
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Rewrapped to %d characters", width)))
	default:
		fmt.Fprintln(w, successStyle.Render("Rewrapped paragraphs"))
	}
}

// LintIssues renders lint findings.
func LintIssues(w io.Writer, res format.LintResult) {
	if !res.HasIssues() {
		fmt.Fprintln(w, successStyle.Render("No issues found"))
		return
	}
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Found %d issue(s)", len(res.Issues))))
	for _, issue := range res.Issues {
		fmt.Fprintf(w, "  %s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%d:%d", issue.Line, issue.Column)),
			numberStyle.Render(issue.RuleID),
			issue.Message,
		)
	}
}

// FixReport renders the auto-fix outcome.
func FixReport(w io.Writer, res format.FixResult) {
	if res.FixedCount > 0 {
		fmt.Fprint(w, successStyle.Render(fmt.Sprintf("Fixed %d issue(s)", res.FixedCount)))
	} else {
		fmt.Fprint(w, dimStyle.Render("No issues to fix"))
	}
	if len(res.Remaining) > 0 {
		fmt.Fprintf(w, " %s", warnStyle.Render(fmt.Sprintf("(%d remaining)", len(res.Remaining))))
	}
	fmt.Fprintln(w)
}

// Cleanup renders the cleanup pipeline summary.
func Cleanup(w io.Writer, rep engine.CleanupReport) {
	if !rep.Modified {
		fmt.Fprintln(w, dimStyle.Render("No changes needed"))
	} else {
		var details []string
		if rep.IssuesFixed > 0 {
			details = append(details, fmt.Sprintf("%d issues fixed", rep.IssuesFixed))
		}
		if rep.SectionsRenumbered > 0 {
			details = append(details, fmt.Sprintf("%d sections renumbered", rep.SectionsRenumbered))
		}
		if rep.TOCUpdated {
			details = append(details, "TOC updated")
		}
		msg := "Cleaned up document"
		if len(details) > 0 {
			msg += " (" + strings.Join(details, ", ") + ")"
		}
		fmt.Fprintln(w, successStyle.Render(msg))
	}
	if len(rep.Remaining) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d lint issue(s) remain", len(rep.Remaining))))
	}
}

// Error renders a command failure.
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error: ")+err.Error())
}
