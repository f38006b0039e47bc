package bperrors

import "fmt"

// DocumentError wraps a structural failure at the top level of the
// document: the root element tree didn't have enough children, or the
// metadata/name sections were missing or malformed.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid document: %v", e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// TooFewRootChildrenError indicates the document didn't have at least a
// metadata paragraph, a name heading and one further section.
type TooFewRootChildrenError struct {
	Got int
}

func (e *TooFewRootChildrenError) Error() string {
	return fmt.Sprintf("document has %d top-level elements, need at least 3", e.Got)
}

// MissingMetadataError indicates the first root element wasn't the metadata
// paragraph.
type MissingMetadataError struct{}

func (*MissingMetadataError) Error() string {
	return "document is missing its metadata section"
}

// InvalidMetadataLineError indicates one metadata line had no "Key: Value"
// separator.
type InvalidMetadataLineError struct {
	Line string
}

func (e *InvalidMetadataLineError) Error() string {
	return fmt.Sprintf("invalid metadata line %q, expected \"Key: Value\"", e.Line)
}

// MissingNameError indicates the second root element wasn't the API name
// heading.
type MissingNameError struct{}

func (*MissingNameError) Error() string {
	return "document is missing its API name heading"
}

// MissingFormatMetadataError indicates the metadata section had no FORMAT
// entry.
type MissingFormatMetadataError struct{}

func (*MissingFormatMetadataError) Error() string {
	return "document metadata is missing a FORMAT entry"
}

// InvalidDataStructuresError indicates a "# Data Structures" section didn't
// alternate heading/bullet-list pairs.
type InvalidDataStructuresError struct {
	Reason string
}

func (e *InvalidDataStructuresError) Error() string {
	return fmt.Sprintf("invalid data structures section: %s", e.Reason)
}
