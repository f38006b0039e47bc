// Package bperrors provides centralized error types for the apiblueprint
// module.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
//
// Error types are organized by domain:
//   - document.go: top-level document structure errors
//   - section.go: bullet-list section parsing errors
//   - reference.go: data structure / model reference resolution errors
//   - registry.go: section registry and builder-state errors
//   - warn.go: the non-fatal warning sink
package bperrors
