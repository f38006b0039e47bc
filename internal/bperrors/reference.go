package bperrors

import "fmt"

// ReferenceError indicates an attribute, model or data-structure reference
// (the "[Name][]" shorthand) named something that was never defined.
type ReferenceError struct {
	Kind string // "data structure", "model", "attributes"
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("undefined %s reference: %q", e.Kind, e.Name)
}

// MergeConflictError indicates two blueprints being merged both define the
// same resource group/resource/action identity with incompatible content.
type MergeConflictError struct {
	Kind string
	ID   string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge conflict: duplicate %s %q", e.Kind, e.ID)
}
