package bperrors

import "fmt"

// RegistryConflictError indicates two section types registered the same
// bullet keyword. Only ever surfaces as a panic at init() time; it has an
// Error() method so it still composes with the rest of the taxonomy if a
// caller recovers it.
type RegistryConflictError struct {
	Keyword string
}

func (e *RegistryConflictError) Error() string {
	return fmt.Sprintf("section type %q registered twice", e.Keyword)
}

// UnknownQueryKeyError indicates a Blueprint index lookup key matched none
// of the three recognised shapes (">group>resource>action", "/path[:METHOD]",
// or a bare group name).
type UnknownQueryKeyError struct {
	Key string
}

func (e *UnknownQueryKeyError) Error() string {
	return fmt.Sprintf("no such query key: %q", e.Key)
}

// InvalidBuilderStateError indicates internal parser bookkeeping reached a
// state it never should, such as a Request asked for its URI while it has no
// enclosing Action. Surfacing it as an error (not a panic) keeps a single malformed
// document from crashing the whole parse.
type InvalidBuilderStateError struct {
	Reason string
}

func (e *InvalidBuilderStateError) Error() string {
	return fmt.Sprintf("invalid parser state: %s", e.Reason)
}
