package bperrors

import (
	"fmt"
	"os"
)

// WarnSink receives non-fatal diagnostics: an unrecognised bullet section,
// or a section that failed to parse but shouldn't abort the whole document.
// With a nil sink an unrecognised section is skipped silently, and a
// section that fails to parse is returned as a SectionError that aborts the
// parse.
type WarnSink interface {
	Warnf(format string, args ...any)
}

// StderrWarnSink writes every warning to stderr, one line each, matching
// the reference parser's default "report_warnings = True" behaviour.
type StderrWarnSink struct{}

func (StderrWarnSink) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// NopWarnSink silently discards every warning.
type NopWarnSink struct{}

func (NopWarnSink) Warnf(string, ...any) {}

// CollectingWarnSink accumulates warnings in memory instead of printing
// them; the CLI commands use it to gather a parse's warnings and print them
// afterwards.
type CollectingWarnSink struct {
	Messages []string
}

func (c *CollectingWarnSink) Warnf(format string, args ...any) {
	c.Messages = append(c.Messages, fmt.Sprintf(format, args...))
}
