package blueprint

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// Headers is an ordered set of HTTP header name/value pairs declared in a
// "+ Headers" bullet's fenced or indented code block, one "Name: Value" per
// line.
type Headers struct {
	base
	entries *orderedmap.OrderedMap[string, string]
}

func (*Headers) nestedSectionID() string { return "headers" }

func (h *Headers) Len() int {
	if h.entries == nil {
		return 0
	}
	return h.entries.Len()
}

func (h *Headers) Get(name string) (string, bool) {
	if h.entries == nil {
		return "", false
	}
	return h.entries.Get(name)
}

// All iterates header name/value pairs in declaration order.
func (h *Headers) All() []orderedmap.Pair[string, string] {
	if h.entries == nil {
		return nil
	}
	out := make([]orderedmap.Pair[string, string], 0, h.entries.Len())
	for pair := h.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, orderedmap.Pair[string, string]{Key: pair.Key, Value: pair.Value})
	}
	return out
}

func (h *Headers) String() string {
	var b strings.Builder
	for i, pair := range h.All() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pair.Key)
		b.WriteString(": ")
		b.WriteString(pair.Value)
	}
	return b.String()
}

func parseHeadersFromElement(node *etree.Element, _ bperrors.WarnSink) (registeredSection, error) {
	if len(node.Children) == 0 || (node.Children[0].Tag != etree.TagP && node.Children[0].Tag != etree.TagPre) {
		return nil, &bperrors.InvalidAttributeFormatError{Line: node.Text}
	}
	text := etree.PreContents(node.Children[0])
	h := &Headers{entries: orderedmap.New[string, string]()}
	if strings.TrimSpace(text) == "" {
		return h, nil
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, &bperrors.InvalidAttributeFormatError{Line: line}
		}
		h.entries.Set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	return h, nil
}

func init() {
	registerSection([]string{"Headers", "Header"}, parseHeadersFromElement)
}
