package bperrors

import "fmt"

// SectionError wraps a failure parsing one bullet-list section (Headers,
// Body, Attributes, Request, Response, ...) inside a resource, action or
// payload. Context names the enclosing resource/action/payload for
// diagnostics.
type SectionError struct {
	Section string
	Context string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("failed to parse section %q in %s: %v", e.Section, e.Context, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// InvalidDefinitionError indicates a resource, action or payload definition
// line didn't match the expected "METHOD /path" / "NAME (type)" grammar.
type InvalidDefinitionError struct {
	Keyword string
	Line    string
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("invalid %s definition: %q", e.Keyword, e.Line)
}

// InvalidAttributeFormatError indicates an attribute/parameter bullet line
// could not be decomposed into name/type/description.
type InvalidAttributeFormatError struct {
	Line string
}

func (e *InvalidAttributeFormatError) Error() string {
	return fmt.Sprintf("invalid attribute format: %q", e.Line)
}

// MultipleAttributeValueError indicates both an inline value and a nested
// bullet list of values were given for the same attribute.
type MultipleAttributeValueError struct {
	Name string
}

func (e *MultipleAttributeValueError) Error() string {
	return fmt.Sprintf("multiple values given for attribute %q", e.Name)
}

// DefaultOnRequiredParameterError indicates a "Default:" member was given
// for a parameter that is required (or has no optionality marker at all).
type DefaultOnRequiredParameterError struct {
	Name string
}

func (e *DefaultOnRequiredParameterError) Error() string {
	return fmt.Sprintf("default value given for non-optional parameter %q", e.Name)
}
