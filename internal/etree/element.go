// Package etree defines the flat element-tree shape that the Blueprint
// structural parser consumes: a root document holding p, pre, ul/ol/li and
// h1..h6 nodes, each carrying plain text and child elements. It also owns the
// adaptation from a real Markdown engine (blackfriday) into that shape, so
// the parser package never has to know which Markdown dialect produced it.
package etree

import "strconv"

// Tag names recognised by the structural parser. Anything else is treated as
// an opaque leaf and ignored by section dispatch.
const (
	TagDocument = "document"
	TagP        = "p"
	TagPre      = "pre"
	TagCode     = "code"
	TagUL       = "ul"
	TagOL       = "ol"
	TagLI       = "li"
)

// Element is one node of the flattened Markdown element tree.
type Element struct {
	Tag      string
	Text     string
	Children []*Element
}

// New builds a leaf or branch element.
func New(tag, text string, children ...*Element) *Element {
	return &Element{Tag: tag, Text: text, Children: children}
}

// IsHeader reports whether e is a h1..h6 node, mirroring the original
// parser's `len(tag) == 2 and tag[0] == 'h' and tag[1].isdigit()` check.
func (e *Element) IsHeader() bool {
	_, ok := e.HeaderLevel()
	return ok
}

// HeaderLevel returns the numeric heading level and true if e is a header.
func (e *Element) HeaderLevel() (int, bool) {
	if e == nil || len(e.Tag) != 2 || e.Tag[0] != 'h' {
		return 0, false
	}
	level, err := strconv.Atoi(e.Tag[1:])
	if err != nil || level < 1 || level > 6 {
		return 0, false
	}
	return level, true
}

// AppendChild appends a child element and returns e for chaining.
func (e *Element) AppendChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return e
}

// PreContents returns the raw text of a pre node, unwrapping a single nested
// code child when the pre node itself carries no direct text. Mirrors the
// original `get_pre_contents` helper, which handled both the "pre has text
// directly" and "pre wraps a single code child" shapes a Markdown engine may
// produce for a fenced or indented code block.
func PreContents(e *Element) string {
	if e == nil {
		return ""
	}
	if e.Text != "" {
		return e.Text
	}
	if e.Tag == TagPre && len(e.Children) == 1 && e.Children[0].Tag == TagCode {
		return e.Children[0].Text
	}
	return e.Text
}
