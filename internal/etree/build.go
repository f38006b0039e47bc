package etree

import (
	"strconv"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// Parse runs the two line-level preprocessors, hands the result to
// blackfriday, and lowers blackfriday's AST into the flat element tree the
// structural parser expects. Producing a Markdown AST from bytes is the
// delegated, out-of-scope step; this is the adapter at that boundary.
func Parse(src []byte) *Element {
	lines := strings.Split(string(src), "\n")
	lines = StripBackquotes(lines)
	lines = AlignIndentation(lines)
	joined := strings.Join(lines, "\n")

	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	doc := md.Parse([]byte(joined))

	root := &Element{Tag: TagDocument}
	for c := doc.FirstChild; c != nil; c = c.Next {
		if el := convertBlock(c); el != nil {
			root.Children = append(root.Children, el)
		}
	}
	UnwrapTitles(root)
	LiftHeadings(root)
	return root
}

// convertBlock converts one top-level blackfriday block node into an
// element. Returns nil for node types the Blueprint grammar never cares
// about (tables, thematic breaks, raw HTML blocks).
func convertBlock(n *blackfriday.Node) *Element {
	switch n.Type {
	case blackfriday.Heading:
		return &Element{
			Tag:  "h" + strconv.Itoa(n.HeadingData.Level),
			Text: renderInline(n),
		}
	case blackfriday.Paragraph:
		return &Element{Tag: TagP, Text: renderInline(n)}
	case blackfriday.CodeBlock:
		return &Element{Tag: TagPre, Text: strings.TrimRight(string(n.Literal), "\n")}
	case blackfriday.List:
		tag := TagUL
		if n.ListData.ListFlags&blackfriday.ListTypeOrdered != 0 {
			tag = TagOL
		}
		el := &Element{Tag: tag}
		for c := n.FirstChild; c != nil; c = c.Next {
			if c.Type == blackfriday.Item {
				el.Children = append(el.Children, convertItem(c))
			}
		}
		return el
	case blackfriday.BlockQuote:
		// Treated as an opaque leaf: its rendered text is preserved so a
		// description paragraph that happens to sit inside a blockquote is
		// not silently dropped, but nothing dispatches on its structure.
		return &Element{Tag: TagP, Text: renderBlockText(n)}
	default:
		return nil
	}
}

// convertItem converts a list item. Its first Paragraph child (present
// whether the enclosing list is loose or tight) supplies the raw text that
// the section dispatcher and definition parsers split on; any further block
// children (nested lists, code blocks) become children, mirroring how a
// `<li>` in the original ElementTree-based pipeline carried its own text
// plus nested `<ul>`/`<pre>` sub-elements.
func convertItem(n *blackfriday.Node) *Element {
	el := &Element{Tag: TagLI}
	first := true
	for c := n.FirstChild; c != nil; c = c.Next {
		if first && c.Type == blackfriday.Paragraph {
			el.Text = renderInline(c)
			first = false
			continue
		}
		first = false
		if child := convertBlock(c); child != nil {
			el.Children = append(el.Children, child)
		}
	}
	return el
}

// renderInline concatenates the plain-text content of a node's inline
// children, turning soft/hard line breaks back into newlines so multi-line
// paragraphs (e.g. the metadata block) keep their original line structure.
func renderInline(n *blackfriday.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.Next {
		writeInlineText(&b, c)
	}
	return b.String()
}

func writeInlineText(b *strings.Builder, n *blackfriday.Node) {
	switch n.Type {
	case blackfriday.Text, blackfriday.Code, blackfriday.HTMLSpan:
		b.Write(n.Literal)
	case blackfriday.Softbreak, blackfriday.Hardbreak:
		b.WriteByte('\n')
	default:
		for c := n.FirstChild; c != nil; c = c.Next {
			writeInlineText(b, c)
		}
	}
}

// renderBlockText flattens every paragraph inside a block node into a single
// newline-joined string.
func renderBlockText(n *blackfriday.Node) string {
	var lines []string
	for c := n.FirstChild; c != nil; c = c.Next {
		if c.Type == blackfriday.Paragraph {
			lines = append(lines, renderInline(c))
		}
	}
	return strings.Join(lines, "\n")
}
