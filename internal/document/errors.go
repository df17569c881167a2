package document

import (
	"fmt"
	"strings"
)

// NotFoundError reports a reference that matched no section.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("section not found: %q", e.Ref)
}

// AmbiguousError reports a title reference that matched more than one section.
type AmbiguousError struct {
	Ref     string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous reference %q: matches %s", e.Ref, strings.Join(e.Matches, ", "))
}

// InvalidOperationError reports a transform that would violate level or
// nesting rules: promoting past level 2, demoting into an orphaned depth,
// moving a section into its own subtree, or structurally editing the TOC.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "invalid operation: " + e.Reason
}

// InvalidLevelError reports an insert at a level incompatible with its
// chosen position.
type InvalidLevelError struct {
	Level  int
	Reason string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %d: %s", e.Level, e.Reason)
}

// MalformedDocumentError is reserved for trees whose line-range invariants
// cannot be established. Trees built by Parse never produce it.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return "malformed document: " + e.Reason
}
