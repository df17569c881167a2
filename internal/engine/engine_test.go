package engine

import (
	"strings"
	"testing"

	"github.com/itsmostafa/mdstruct/internal/config"
)

const planDoc = `# Plan

## 1. Overview

Overview text.

## 2. Goals

Goals text.

## 3. Risks

Risks text.`

func TestValidate(t *testing.T) {
	t.Run("clean document", func(t *testing.T) {
		eng := New(nil)
		rep := eng.Validate(planDoc)
		if !rep.Valid {
			t.Errorf("expected valid, got %+v", rep)
		}
		if len(rep.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %v", rep.Recommendations)
		}
	})

	t.Run("stale numbering and toc", func(t *testing.T) {
		doc := "# Doc\n\n## Table of Contents\n\n- 1. One\n\n## 2. One"
		rep := New(nil).Validate(doc)
		if rep.Valid {
			t.Fatal("expected invalid")
		}
		if len(rep.Recommendations) != 2 {
			t.Errorf("expected renumber and toc recommendations, got %v", rep.Recommendations)
		}
		if rep.Numbering.Valid || rep.TOC.Valid {
			t.Errorf("expected both inspections to fail: %+v", rep)
		}
	})
}

func TestInsertThenRenumber(t *testing.T) {
	eng := New(nil)
	inserted, res, err := eng.Insert(planDoc, "Security", 2, "after", "3")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !res.RenumberRecommended {
		t.Error("expected renumber recommendation")
	}

	renumbered, rep := eng.Renumber(inserted)
	if rep.SectionsRenumbered != 1 {
		t.Errorf("SectionsRenumbered = %d, want 1", rep.SectionsRenumbered)
	}
	if !strings.Contains(renumbered, "## 4. Security") {
		t.Errorf("expected Security to get number 4:\n%s", renumbered)
	}
}

func TestInsertByFullTitle(t *testing.T) {
	doc := "# Doc\n\n## 4. Rollout\n\nRollout text.\n\n## 5. Implementation Plan\n\nPlan text."
	eng := New(nil)

	inserted, _, err := eng.Insert(doc, "Security", 2, "before", "5. Implementation Plan")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !strings.Contains(inserted, "## Security\n") {
		t.Fatalf("expected an unnumbered Security section:\n%s", inserted)
	}
	if strings.Index(inserted, "## Security") > strings.Index(inserted, "## 5. Implementation Plan") {
		t.Errorf("Security not inserted before the target:\n%s", inserted)
	}

	renumbered, _ := eng.Renumber(inserted)
	for _, want := range []string{"## 5. Security", "## 6. Implementation Plan"} {
		if !strings.Contains(renumbered, want) {
			t.Errorf("expected %q after renumber:\n%s", want, renumbered)
		}
	}
}

func TestOperationErrors(t *testing.T) {
	eng := New(nil)
	if _, _, err := eng.Move(planDoc, "9", "before", "1"); err == nil {
		t.Error("expected move of an unknown section to fail")
	}
	if _, _, err := eng.Delete(planDoc, "Nope"); err == nil {
		t.Error("expected delete of an unknown section to fail")
	}
	if _, _, err := eng.Insert(planDoc, "Bad", 7, "after", "1"); err == nil {
		t.Error("expected out-of-range level to fail")
	}
}

func TestInspect(t *testing.T) {
	info := New(nil).Inspect(planDoc)
	if info.Title != "Plan" {
		t.Errorf("Title = %q, want Plan", info.Title)
	}
	if info.HasTOC {
		t.Error("expected no TOC")
	}
	if info.TotalSections != 3 {
		t.Errorf("TotalSections = %d, want 3", info.TotalSections)
	}
	first := info.Outline[0]
	if first.Number != "1" || first.Title != "Overview" || first.Level != 2 {
		t.Errorf("first entry = %+v", first)
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Run("width from config", func(t *testing.T) {
		eng := New(&config.Config{Format: config.FormatConfig{Width: 30}})
		res := eng.Rewrap("# Doc\n\naaaa bbbb cccc dddd eeee ffff gggg", 0)
		for _, line := range strings.Split(res.Content, "\n") {
			if len(line) > 30 {
				t.Errorf("line exceeds configured width: %q", line)
			}
		}
	})

	t.Run("strict toc match from config", func(t *testing.T) {
		cfg := config.Default()
		cfg.TOC.StrictTitleMatch = true
		info := New(cfg).Inspect("# Doc\n\n## table of contents\n\n## 1. One")
		if info.HasTOC {
			t.Error("strict match should reject a lowercase TOC heading")
		}
	})
}

func TestCleanup(t *testing.T) {
	doc := "# Doc\n\n## Table of Contents\n\n- 1. One\n\n## 1. One\n\nText with trailing  \nand more.\n\n## Two"
	cleaned, rep := New(nil).Cleanup(doc, 0, 0)

	if !rep.Modified {
		t.Error("expected the document to change")
	}
	if rep.SectionsRenumbered != 1 {
		t.Errorf("SectionsRenumbered = %d, want 1", rep.SectionsRenumbered)
	}
	if !rep.TOCUpdated {
		t.Error("expected the TOC to be refreshed")
	}
	if len(rep.Remaining) != 0 {
		t.Errorf("expected no remaining issues, got %v", rep.Remaining)
	}

	for _, want := range []string{"## 2. Two", "- 2. Two", "Text with trailing and more."} {
		if !strings.Contains(cleaned, want) {
			t.Errorf("expected %q in cleaned document:\n%s", want, cleaned)
		}
	}
	if !strings.HasSuffix(cleaned, "\n") || strings.HasSuffix(cleaned, "\n\n") {
		t.Error("expected exactly one trailing newline")
	}

	t.Run("idempotent", func(t *testing.T) {
		again, rep := New(nil).Cleanup(cleaned, 0, 0)
		if rep.Modified {
			t.Errorf("second cleanup changed the document:\n%s", again)
		}
	})

	t.Run("no toc is not created", func(t *testing.T) {
		_, rep := New(nil).Cleanup(planDoc, 0, 0)
		if rep.TOCUpdated {
			t.Error("cleanup must not create a TOC")
		}
	})
}
