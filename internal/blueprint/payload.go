package blueprint

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// mediaType is a parsed "type/subtype" Content-Type, such as
// ("application", "json").
type mediaType struct {
	typ, subtype string
}

func (m *mediaType) String() string {
	if m == nil {
		return ""
	}
	return m.typ + "/" + m.subtype
}

// payload holds the fields common to Request, Response and Model: the
// keyword that introduced it, an optional name, declared media type, and the
// Headers/Attributes/Body/Schema sections nested under its own bullet list.
type payload struct {
	named
	keyword    string
	media      *mediaType
	headers    *Headers
	attributes *Attributes
	body       *Body
	schema     *Schema
	reference  string
	hasRef     bool
}

func (p *payload) Keyword() string      { return p.keyword }
func (p *payload) MediaType() string    { return p.media.String() }
func (p *payload) Headers() *Headers    { return p.headers }
func (p *payload) Attributes() *Attributes { return p.attributes }
func (p *payload) Body() *Body          { return p.body }
func (p *payload) Schema() *Schema      { return p.schema }
func (p *payload) Reference() (string, bool) { return p.reference, p.hasRef }

func (p *payload) fixParents(parent Section) {
	fixChild(p.headers, p)
	fixChild(p.attributes, p)
	fixChild(p.body, p)
	fixChild(p.schema, p)
}

// Value decodes the payload's Body according to its declared media type:
// application/json into a generic any via encoding/json, application/xml
// into an *xmlNode tree via encoding/xml, and text/plain as a trimmed
// string. Any other media type is an error — the reference implementation
// leaves it entirely unimplemented.
func (p *payload) Value() (any, error) {
	if p.body == nil {
		return nil, fmt.Errorf("payload %q has no body to decode", p.id())
	}
	switch p.MediaType() {
	case "application/json":
		var v any
		if err := json.Unmarshal([]byte(p.body.content), &v); err != nil {
			return nil, fmt.Errorf("decoding json body of %q: %w", p.id(), err)
		}
		return v, nil
	case "application/xml":
		var v xmlNode
		if err := xml.Unmarshal([]byte(p.body.content), &v); err != nil {
			return nil, fmt.Errorf("decoding xml body of %q: %w", p.id(), err)
		}
		return &v, nil
	case "text/plain":
		return strings.TrimSpace(p.body.content), nil
	default:
		return nil, fmt.Errorf("Value() is not implemented for media type %s", p.MediaType())
	}
}

func (p *payload) id() string {
	if p.name != "" {
		return p.keyword + " " + p.name
	}
	return p.keyword
}

// xmlNode is a minimal generic XML tree used to decode application/xml
// bodies without requiring callers to declare a concrete schema type.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// parsePayloadDefinition parses a predefined-payload bullet's text line —
// "Request", "Response 200 (application/json)", "Model Coordinates
// (application/json)" — after its introducing keyword, into an optional
// name and an optional media type.
func parsePayloadDefinition(txt string) (name string, media *mediaType, err error) {
	if idx := strings.IndexByte(txt, '\n'); idx >= 0 {
		txt = txt[:idx]
	}
	_, rest := splitOnFirstSpaceOrTab(txt)
	if rest == "" {
		return "", nil, nil
	}
	if rest[len(rest)-1] == ')' {
		inner, ok := isBracketed(rest, '(', ')')
		if !ok {
			return "", nil, &bperrors.InvalidAttributeFormatError{Line: txt}
		}
		parts := strings.SplitN(inner, "/", 2)
		if len(parts) == 2 {
			media = &mediaType{typ: strings.TrimSpace(parts[0]), subtype: strings.TrimSpace(parts[1])}
		}
		paren := strings.LastIndexByte(rest, '(')
		if paren > 0 {
			name = strings.TrimSpace(rest[:paren])
		}
		return name, media, nil
	}
	return rest, nil, nil
}

// parsePredefinedPayload parses the fields common to Request/Response/Model
// from a bullet <li>: its definition line, then any description paragraphs,
// then a nested <ul> of Headers/Attributes/Body/Schema sections dispatched
// through the section registry.
func parsePredefinedPayload(keyword string, node *etree.Element, warn bperrors.WarnSink) (*payload, error) {
	name, media, err := parsePayloadDefinition(node.Text)
	if err != nil {
		return nil, err
	}
	desc, index := parseDescription(node.Children, etree.TagPre, etree.TagUL)

	p := &payload{named: named{name: name, description: desc}, keyword: keyword, media: media}
	if len(node.Children) > index {
		switch node.Children[index].Tag {
		case etree.TagPre:
			p.body = &Body{content: etree.PreContents(node.Children[index])}
		case etree.TagUL:
			for _, li := range node.Children[index].Children {
				section, err := parseSection(li, warn, keyword)
				if err != nil {
					return nil, err
				}
				if section == nil {
					continue
				}
				switch s := section.(type) {
				case *Headers:
					p.headers = s
				case *Attributes:
					p.attributes = s
				case *Body:
					p.body = s
				case *Schema:
					p.schema = s
				}
			}
		}
	}
	return p, nil
}

// Model is the "+ Model" section of a resource, the canonical
// representation returned by its default GET.
type Model struct {
	payload
}

func (*Model) nestedSectionID() string { return "model" }

func parseModelFromElement(node *etree.Element, warn bperrors.WarnSink) (registeredSection, error) {
	p, err := parsePredefinedPayload("Model", node, warn)
	if err != nil {
		return nil, err
	}
	return &Model{payload: *p}, nil
}

func init() {
	registerSection([]string{"Model"}, parseModelFromElement)
}
