package document

import (
	"errors"
	"testing"
)

const resolveDoc = `# Doc

## 1. Overview

## 2. API

### 2.1 Details

## 3. CLI

### 3.1 Details`

func TestResolve(t *testing.T) {
	tree := Parse(resolveDoc)

	t.Run("by number", func(t *testing.T) {
		id, err := tree.Resolve("2.1")
		if err != nil {
			t.Fatalf("Resolve(2.1): %v", err)
		}
		s := tree.Section(id)
		if s.Title != "Details" || tree.Section(s.Parent).Title != "API" {
			t.Errorf("resolved %q under %q, want Details under API", s.Title, tree.Section(s.Parent).Title)
		}
	})

	t.Run("by title", func(t *testing.T) {
		id, err := tree.Resolve("Overview")
		if err != nil {
			t.Fatalf("Resolve(Overview): %v", err)
		}
		if tree.Section(id).Number != "1" {
			t.Errorf("resolved number %q, want 1", tree.Section(id).Number)
		}
	})

	t.Run("title match is case sensitive", func(t *testing.T) {
		_, err := tree.Resolve("overview")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("ambiguous title", func(t *testing.T) {
		_, err := tree.Resolve("Details")
		var amb *AmbiguousError
		if !errors.As(err, &amb) {
			t.Fatalf("expected AmbiguousError, got %v", err)
		}
		if len(amb.Matches) != 2 {
			t.Errorf("expected 2 matches, got %d: %v", len(amb.Matches), amb.Matches)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := tree.Resolve("9")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if nf.Ref != "9" {
			t.Errorf("Ref = %q, want 9", nf.Ref)
		}
	})

	t.Run("by full numbered title", func(t *testing.T) {
		doc := Parse("# Doc\n\n## 4. Rollout\n\n## 5. Implementation Plan\n\n### 5.1 Phases")
		id, err := doc.Resolve("5. Implementation Plan")
		if err != nil {
			t.Fatalf("Resolve(5. Implementation Plan): %v", err)
		}
		if doc.Section(id).Title != "Implementation Plan" {
			t.Errorf("resolved %q, want Implementation Plan", doc.Section(id).Title)
		}
		id, err = doc.Resolve("5.1 Phases")
		if err != nil {
			t.Fatalf("Resolve(5.1 Phases): %v", err)
		}
		if doc.Section(id).Number != "5.1" {
			t.Errorf("resolved number %q, want 5.1", doc.Section(id).Number)
		}
	})

	t.Run("bare title beats full title", func(t *testing.T) {
		doc := Parse("# Doc\n\n## 1. 2. Odd\n\n## 2. Odd")
		id, err := doc.Resolve("2. Odd")
		if err != nil {
			t.Fatalf("Resolve(2. Odd): %v", err)
		}
		if doc.Section(id).Number != "1" {
			t.Errorf("resolved number %q, want the bare-title match 1", doc.Section(id).Number)
		}
	})

	t.Run("number beats identical title", func(t *testing.T) {
		numbered := Parse("# Doc\n\n## 1. 2\n\n## 2. Second")
		id, err := numbered.Resolve("2")
		if err != nil {
			t.Fatalf("Resolve(2): %v", err)
		}
		if numbered.Section(id).Title != "Second" {
			t.Errorf("resolved %q, want the section numbered 2", numbered.Section(id).Title)
		}
	})
}
