// Package engine is the text-in/text-out facade over the structural
// components. Every call is an independent parse → validate-or-transform →
// serialize round trip; no tree survives between calls, so the engine is
// safe to invoke repeatedly without locking. The caller owns all file I/O.
package engine

import (
	"github.com/itsmostafa/mdstruct/internal/config"
	"github.com/itsmostafa/mdstruct/internal/document"
	"github.com/itsmostafa/mdstruct/internal/format"
	"github.com/itsmostafa/mdstruct/internal/numbering"
	"github.com/itsmostafa/mdstruct/internal/section"
	"github.com/itsmostafa/mdstruct/internal/toc"
)

// Engine applies document commands under a fixed configuration.
type Engine struct {
	cfg *config.Config
}

// New builds an engine; a nil config means defaults.
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) parse(content string) *document.Tree {
	var opts []document.Option
	if e.cfg.TOC.StrictTitleMatch {
		opts = append(opts, document.WithStrictTOCMatch(true))
	}
	return document.Parse(content, opts...)
}

func (e *Engine) depth(depth int) int {
	if depth <= 0 {
		return e.cfg.TOC.Depth
	}
	return depth
}

func (e *Engine) width(width int) int {
	if width <= 0 {
		return e.cfg.Format.Width
	}
	return width
}

// ValidationReport combines the numbering and TOC inspections.
type ValidationReport struct {
	Valid           bool
	Numbering       numbering.Result
	TOC             toc.Validation
	Recommendations []string
}

// Validate inspects numbering and TOC consistency without mutating anything.
func (e *Engine) Validate(content string) ValidationReport {
	t := e.parse(content)
	num := numbering.Validate(t)
	tv := toc.Validate(t, e.cfg.TOC.Depth)

	recs := append([]string(nil), num.Recommendations...)
	if tv.HasTOC && !tv.Valid {
		recs = append(recs, "Run 'toc update' to refresh the table of contents.")
	}
	return ValidationReport{
		Valid:           num.Valid && tv.Valid,
		Numbering:       num,
		TOC:             tv,
		Recommendations: recs,
	}
}

// Renumber rewrites every section heading with its canonical number.
func (e *Engine) Renumber(content string) (string, numbering.Report) {
	t, rep := numbering.Renumber(e.parse(content))
	return t.Content(), rep
}

// OutlineEntry is one row of the flattened document structure.
type OutlineEntry struct {
	Number    string
	Title     string
	Level     int
	StartLine int
	EndLine   int
}

// DocumentInfo is the read-only structure report for the parse command.
type DocumentInfo struct {
	Title         string
	HasTOC        bool
	TotalSections int
	Outline       []OutlineEntry
}

// Inspect parses the document and reports its structure.
func (e *Engine) Inspect(content string) DocumentInfo {
	t := e.parse(content)
	info := DocumentInfo{Title: t.DocumentTitle(), HasTOC: t.HasTOC()}
	for _, id := range t.Order() {
		s := t.Section(id)
		info.Outline = append(info.Outline, OutlineEntry{
			Number:    s.Number,
			Title:     s.Title,
			Level:     s.Level,
			StartLine: s.StartLine,
			EndLine:   s.EndLine,
		})
	}
	info.TotalSections = len(info.Outline)
	return info
}

// UpdateTOC creates or refreshes the table of contents.
func (e *Engine) UpdateTOC(content string, depth int) (string, toc.Report) {
	t, rep := toc.Update(e.parse(content), e.depth(depth))
	return t.Content(), rep
}

// RemoveTOC deletes the table of contents if present.
func (e *Engine) RemoveTOC(content string) (string, toc.Report) {
	t, rep := toc.Remove(e.parse(content))
	return t.Content(), rep
}

// ValidateTOC reports missing and stale TOC entries.
func (e *Engine) ValidateTOC(content string, depth int) toc.Validation {
	return toc.Validate(e.parse(content), e.depth(depth))
}

// Move relocates a section (with its subtree) before or after a target.
func (e *Engine) Move(content, sectionRef, position, targetRef string) (string, section.Result, error) {
	t, res, err := section.Move(e.parse(content), sectionRef, section.Position(position), targetRef)
	if err != nil {
		return "", res, err
	}
	return t.Content(), res, nil
}

// Insert adds a new empty section next to a target.
func (e *Engine) Insert(content, heading string, level int, position, targetRef string) (string, section.Result, error) {
	t, res, err := section.Insert(e.parse(content), heading, level, section.Position(position), targetRef)
	if err != nil {
		return "", res, err
	}
	return t.Content(), res, nil
}

// Delete removes a section and its descendants.
func (e *Engine) Delete(content, sectionRef string) (string, section.Result, error) {
	t, res, err := section.Delete(e.parse(content), sectionRef)
	if err != nil {
		return "", res, err
	}
	return t.Content(), res, nil
}

// Promote shifts a section one level shallower.
func (e *Engine) Promote(content, sectionRef string) (string, section.Result, error) {
	t, res, err := section.Promote(e.parse(content), sectionRef)
	if err != nil {
		return "", res, err
	}
	return t.Content(), res, nil
}

// Demote shifts a section one level deeper.
func (e *Engine) Demote(content, sectionRef string) (string, section.Result, error) {
	t, res, err := section.Demote(e.parse(content), sectionRef)
	if err != nil {
		return "", res, err
	}
	return t.Content(), res, nil
}

// Rewrap normalizes paragraph line lengths.
func (e *Engine) Rewrap(content string, width int) format.RewrapResult {
	return format.Rewrap(content, e.width(width))
}

// Lint scans for markdown issues.
func (e *Engine) Lint(content string) format.LintResult {
	return format.Lint(content)
}

// Fix auto-fixes markdown issues and reports what remains.
func (e *Engine) Fix(content string) format.FixResult {
	return format.Fix(content)
}

// CleanupReport summarizes the full cleanup pipeline.
type CleanupReport struct {
	Modified           bool
	IssuesFixed        int
	SectionsRenumbered int
	TOCUpdated         bool
	Remaining          []format.Issue
}

// Cleanup runs rewrap → fix → renumber → TOC refresh (only when a TOC
// already exists) and reports any lint issues left over.
func (e *Engine) Cleanup(content string, width, depth int) (string, CleanupReport) {
	current := format.Rewrap(content, e.width(width)).Content

	fixRes := format.Fix(current)
	current = fixRes.Content

	t, numRep := numbering.Renumber(e.parse(current))
	current = t.Content()

	rep := CleanupReport{
		IssuesFixed:        fixRes.FixedCount,
		SectionsRenumbered: numRep.SectionsRenumbered,
	}

	if t.HasTOC() {
		before := current
		t2, _ := toc.Update(t, e.depth(depth))
		current = t2.Content()
		rep.TOCUpdated = current != before
	}

	rep.Modified = current != content
	rep.Remaining = format.Lint(current).Issues
	return current, rep
}
