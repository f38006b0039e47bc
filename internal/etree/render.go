package etree

import (
	"html"
	"strings"
)

// SerializeToHTML renders an element subtree back to an HTML fragment, for
// embedding inside a description. This is the "opaque helper" spec.md
// mentions re-rendering arbitrary description sub-trees; callers never
// inspect its output structurally, only store and forward it.
func SerializeToHTML(e *Element) string {
	var b strings.Builder
	writeHTML(&b, e)
	return b.String()
}

func writeHTML(b *strings.Builder, e *Element) {
	if e == nil {
		return
	}
	tag := e.Tag
	if tag == "" || tag == TagDocument {
		for _, c := range e.Children {
			writeHTML(b, c)
		}
		return
	}
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteByte('>')
	b.WriteString(html.EscapeString(e.Text))
	for _, c := range e.Children {
		writeHTML(b, c)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
