package blueprint

import (
	"strings"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// Attribute is one member of an Attributes or data-structures section:
// "name: value (type, required) - description", optionally expanded into a
// nested list of sub-attributes instead of a scalar value.
type Attribute struct {
	named
	typ      string
	required *bool
	value    any // nil, string, or []*Attribute
}

// Type returns the attribute's declared type, defaulting to "object" when
// none was given.
func (a *Attribute) Type() string { return a.typ }

// Required returns the attribute's required/optional marker, and false in
// ok if neither "required" nor "optional" was specified.
func (a *Attribute) Required() (required bool, ok bool) {
	if a.required == nil {
		return false, false
	}
	return *a.required, true
}

// Value returns the attribute's inline value (a string), the nested
// sub-attributes (a []*Attribute) when it was given as a bullet list, or
// nil when no value was given at all.
func (a *Attribute) Value() any { return a.value }

// IsArray reports whether the attribute's type is "array" or "array[T]".
func (a *Attribute) IsArray() bool {
	return strings.HasPrefix(a.typ, "array")
}

// ArraySubtype extracts T from an "array[T]" type, or "object" from a bare
// "array" type. Returns ok=false if typ isn't an array type at all.
func ArraySubtype(typ string) (subtype string, ok bool) {
	if !strings.HasPrefix(typ, "array") {
		return "", false
	}
	rest := typ[len("array"):]
	if rest == "" {
		return "object", true
	}
	inner, bracketed := isBracketed(rest, '[', ']')
	if !bracketed {
		return "", false
	}
	return inner, true
}

func (a *Attribute) fixParents(parent Section) {
	if list, ok := a.value.([]*Attribute); ok {
		for _, v := range list {
			fixChild(v, a)
		}
	}
}

// String renders the attribute the way the reference implementation's
// Attribute.__str__ does: "name: value (type, required) - description",
// with multi-valued attributes appended as an indented block below.
func (a *Attribute) String() string {
	var b strings.Builder
	b.WriteString(a.name)
	multi := false
	if list, ok := a.value.([]*Attribute); ok {
		multi = true
		_ = list
	} else if s, ok := a.value.(string); ok {
		b.WriteString(": ")
		b.WriteString(s)
	}
	if a.typ != "" {
		b.WriteString(" (")
		b.WriteString(a.typ)
		if a.required != nil {
			if *a.required {
				b.WriteString(", required")
			} else {
				b.WriteString(", optional")
			}
		}
		b.WriteString(")")
	}
	if a.description != "" {
		b.WriteString(" - ")
		b.WriteString(strings.ReplaceAll(a.description, "\n", " "))
	}
	if multi {
		b.WriteByte('\n')
		for _, v := range a.value.([]*Attribute) {
			for _, line := range strings.Split(v.String(), "\n") {
				b.WriteString("  ")
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// ParseAttributeFromString parses one attribute definition line —
// "+ name: value (type, required) - description" — without descending into
// any nested bullet list. Leading "+"/"-" bullet markers are stripped first.
func ParseAttributeFromString(parent Section, line string) (*Attribute, error) {
	if line != "" && (line[0] == '-' || line[0] == '+') {
		line = line[1:]
	}
	var description string
	if pos := strings.LastIndexByte(line, '-'); pos > -1 {
		description = strings.TrimSpace(line[pos+1:])
		line = strings.TrimSpace(line[:pos])
	}

	var typ string
	var required *bool
	if line != "" && line[len(line)-1] == ')' {
		paren := strings.LastIndexByte(line, '(')
		if paren < 0 {
			return nil, &bperrors.InvalidAttributeFormatError{Line: line}
		}
		inner := strings.TrimSpace(line[paren+1 : len(line)-1])
		if comma := strings.LastIndexByte(inner, ','); comma > -1 {
			word := strings.TrimSpace(inner[comma+1:])
			typ = strings.TrimSpace(inner[:comma])
			switch word {
			case "required":
				v := true
				required = &v
			case "optional":
				v := false
				required = &v
			}
		} else {
			typ = inner
		}
		line = strings.TrimSpace(line[:paren])
	}

	var name string
	var rawValue string
	var hasValue bool
	if colon := strings.IndexByte(line, ':'); colon > -1 {
		name = strings.TrimSpace(line[:colon])
		rawValue = strings.TrimSpace(line[colon+1:])
		hasValue = rawValue != ""
	} else {
		name = line
	}

	a := &Attribute{named: named{name: name, description: description}, typ: defaultType(typ), required: required}
	if hasValue {
		if subtype, ok := ArraySubtype(typ); ok {
			var values []*Attribute
			for _, part := range strings.Split(rawValue, ",") {
				values = append(values, &Attribute{
					named: named{name: "", description: ""},
					typ:   subtype,
					value: strings.TrimSpace(part),
				})
			}
			a.value = values
			for _, v := range values {
				v.setParent(a)
			}
		} else {
			a.value = rawValue
		}
	}
	if parent != nil {
		a.setParent(parent)
	}
	return a, nil
}

func defaultType(typ string) string {
	if typ == "" {
		return "object"
	}
	return typ
}

// ParseAttributeFromElement parses a full attribute <li>: its text line via
// ParseAttributeFromString, any leading description paragraphs, and a
// trailing nested <ul> of sub-attributes.
func ParseAttributeFromElement(parent Section, node *etree.Element) (*Attribute, error) {
	attr, err := ParseAttributeFromString(parent, node.Text)
	if err != nil {
		return nil, err
	}
	desc, index := parseDescription(node.Children, etree.TagUL)
	attr.description = mergeDescriptions(attr.description, desc)
	if len(node.Children) <= index {
		return attr, nil
	}
	if attr.value != nil {
		return nil, &bperrors.MultipleAttributeValueError{Name: attr.name}
	}
	var children []*Attribute
	for _, li := range node.Children[index].Children {
		child, err := ParseAttributeFromElement(nil, li)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	attr.value = children
	if attr.IsArray() {
		if subtype, ok := ArraySubtype(attr.typ); ok {
			for _, c := range children {
				if c.typ == "object" {
					c.typ = subtype
				}
			}
		}
	}
	for _, c := range children {
		c.setParent(attr)
	}
	return attr, nil
}

func mergeDescriptions(existing, extra string) string {
	switch {
	case existing == "":
		return extra
	case extra == "":
		return existing
	default:
		return existing + "\n" + extra
	}
}

// ParameterMember is one entry of a Parameter's "Members" bullet list: a
// bare name plus optional description, reusing attribute line syntax.
type ParameterMember struct {
	named
}

func ParseParameterMemberFromString(parent Section, txt string) (*ParameterMember, error) {
	attr, err := ParseAttributeFromString(parent, txt)
	if err != nil {
		return nil, err
	}
	return &ParameterMember{named: named{name: attr.name, description: attr.description}}, nil
}

func (m *ParameterMember) String() string {
	return m.name + " - " + m.description
}

// Parameter is an Attribute that also carries a default value and an
// optional enumeration of allowed Members, as used in a Parameters section.
type Parameter struct {
	Attribute
	defaultValue string
	hasDefault   bool
	members      []*ParameterMember
}

func (p *Parameter) DefaultValue() (string, bool) { return p.defaultValue, p.hasDefault }

func (p *Parameter) Members() []*ParameterMember { return p.members }

func (p *Parameter) fixParents(parent Section) {
	p.Attribute.fixParents(parent)
	for _, m := range p.members {
		fixChild(m, p)
	}
}

// ParseParameterFromElement parses a Parameters-section <li>, including its
// optional "Default: ..." and "Members" nested bullets.
func ParseParameterFromElement(parent Section, node *etree.Element) (*Parameter, error) {
	attr, err := ParseAttributeFromString(nil, node.Text)
	if err != nil {
		return nil, err
	}
	desc, index := parseDescription(node.Children, etree.TagUL)
	attr.description = mergeDescriptions(attr.description, desc)

	p := &Parameter{Attribute: *attr}
	if len(node.Children) > index {
		for _, li := range node.Children[index].Children {
			switch {
			case strings.HasPrefix(li.Text, "Default"):
				if required, ok := p.Required(); !ok || required {
					return nil, &bperrors.DefaultOnRequiredParameterError{Name: p.name}
				}
				sep := strings.IndexByte(li.Text, ':')
				if sep < 0 {
					return nil, &bperrors.InvalidAttributeFormatError{Line: li.Text}
				}
				p.defaultValue = strings.TrimSpace(li.Text[sep+1:])
				p.hasDefault = true
			case strings.HasPrefix(li.Text, "Members"):
				if len(li.Children) == 0 || li.Children[0].Tag != etree.TagUL {
					return nil, &bperrors.InvalidAttributeFormatError{Line: li.Text}
				}
				for _, m := range li.Children[0].Children {
					member, err := ParseParameterMemberFromString(p, m.Text)
					if err != nil {
						return nil, err
					}
					p.members = append(p.members, member)
				}
			}
		}
	}
	if parent != nil {
		p.setParent(parent)
	}
	return p, nil
}

// extractReference recognises the "[Name][]" reference shorthand used in
// place of an inline list of sub-attributes or a payload body.
func extractReference(txt string) (string, bool) {
	if len(txt) > 4 && txt[0] == '[' && strings.HasSuffix(txt, "][]") {
		return txt[1 : len(txt)-3], true
	}
	return "", false
}

// DataStructure is an Attribute declared at the top level of a "# Data
// Structures" section; it may additionally be a bare "[Name][]" reference
// to another named structure instead of carrying its own attributes.
type DataStructure struct {
	Attribute
	reference string
	hasRef    bool
}

func (d *DataStructure) Reference() (string, bool) { return d.reference, d.hasRef }

// ParseDataStructureFromElement wraps ParseAttributeFromElement, additionally
// recognising the reference shorthand when the node's only child is a plain
// paragraph or code block.
func ParseDataStructureFromElement(parent Section, node *etree.Element) (*DataStructure, error) {
	attr, err := ParseAttributeFromElement(nil, node)
	if err != nil {
		return nil, err
	}
	d := &DataStructure{Attribute: *attr}
	if len(node.Children) == 1 && (node.Children[0].Tag == etree.TagP || node.Children[0].Tag == etree.TagPre) {
		if ref, ok := extractReference(etree.PreContents(node.Children[0])); ok {
			d.description = ""
			d.reference = ref
			d.hasRef = true
		}
	}
	if parent != nil {
		d.setParent(parent)
	}
	return d, nil
}
