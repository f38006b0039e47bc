package blueprint

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// Attributes is an ordered, name-keyed collection of Attribute members, as
// found in a resource/action/model's "+ Attributes" bullet. It may instead
// be a bare reference to another named Attributes section — "Attributes
// (Coordinates)" — in which case it carries no children of its own until
// the reference is resolved.
type Attributes struct {
	base
	children  *orderedmap.OrderedMap[string, *Attribute]
	reference string
	hasRef    bool
}

func (*Attributes) nestedSectionID() string { return "attributes" }

// Reference returns the name of the Attributes section this one defers to,
// if it was declared as a bare reference rather than an inline list.
func (a *Attributes) Reference() (string, bool) { return a.reference, a.hasRef }

// Len reports the number of attributes directly held (0 for a reference).
func (a *Attributes) Len() int {
	if a.children == nil {
		return 0
	}
	return a.children.Len()
}

// Get looks up a member attribute by name.
func (a *Attributes) Get(name string) (*Attribute, bool) {
	if a.children == nil {
		return nil, false
	}
	return a.children.Get(name)
}

// All iterates the attributes in declaration order.
func (a *Attributes) All() []*Attribute {
	if a.children == nil {
		return nil
	}
	out := make([]*Attribute, 0, a.children.Len())
	for pair := a.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (a *Attributes) fixParents(parent Section) {
	for _, c := range a.All() {
		fixChild(c, a)
	}
}

func (a *Attributes) String() string {
	return fmt.Sprintf("Attributes with %d items", a.Len())
}

func newAttributes(parent Section, children []*Attribute, reference string, hasRef bool) *Attributes {
	a := &Attributes{reference: reference, hasRef: hasRef}
	if !hasRef {
		a.children = orderedmap.New[string, *Attribute]()
		for _, c := range children {
			c.setParent(a)
			a.children.Set(c.name, c)
		}
	}
	if parent != nil {
		a.setParent(parent)
	}
	return a
}

// parseAttributesFromElement parses a "+ Attributes" bullet's nested
// <ul> of Attribute members. Falling back to the reference shorthand
// happens when the bullet's own text ends in "(Name)" instead of having
// any nested list at all.
func parseAttributesFromElement(node *etree.Element, _ bperrors.WarnSink) (registeredSection, error) {
	if len(node.Children) == 0 || node.Children[0].Tag != etree.TagUL {
		if ref, ok := attributesReferenceFromText(node.Text); ok {
			return newAttributes(nil, nil, ref, true), nil
		}
		return nil, &bperrors.InvalidAttributeFormatError{Line: node.Text}
	}
	var children []*Attribute
	for _, li := range node.Children[0].Children {
		attr, err := ParseAttributeFromElement(nil, li)
		if err != nil {
			return nil, err
		}
		children = append(children, attr)
	}
	return newAttributes(nil, children, "", false), nil
}

func attributesReferenceFromText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || text[len(text)-1] != ')' {
		return "", false
	}
	paren := strings.LastIndexByte(text, '(')
	if paren < 0 {
		return "", false
	}
	return text[paren+1 : len(text)-1], true
}

func init() {
	registerSection([]string{"Attributes", "Attribute"}, parseAttributesFromElement)
}

// Parameters is an ordered, name-keyed collection of Parameter entries, as
// found in a resource/action's "+ Parameters" bullet.
type Parameters struct {
	base
	children *orderedmap.OrderedMap[string, *Parameter]
}

func (*Parameters) nestedSectionID() string { return "parameters" }

func (p *Parameters) Len() int {
	if p.children == nil {
		return 0
	}
	return p.children.Len()
}

func (p *Parameters) Get(name string) (*Parameter, bool) {
	if p.children == nil {
		return nil, false
	}
	return p.children.Get(name)
}

func (p *Parameters) All() []*Parameter {
	if p.children == nil {
		return nil
	}
	out := make([]*Parameter, 0, p.children.Len())
	for pair := p.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (p *Parameters) fixParents(parent Section) {
	for _, c := range p.All() {
		fixChild(c, p)
	}
}

func (p *Parameters) String() string {
	return fmt.Sprintf("Parameters with %d items", p.Len())
}

func parseParametersFromElement(node *etree.Element, _ bperrors.WarnSink) (registeredSection, error) {
	if len(node.Children) == 0 || node.Children[0].Tag != etree.TagUL {
		return nil, &bperrors.InvalidAttributeFormatError{Line: node.Text}
	}
	params := &Parameters{children: orderedmap.New[string, *Parameter]()}
	for _, li := range node.Children[0].Children {
		p, err := ParseParameterFromElement(params, li)
		if err != nil {
			return nil, err
		}
		params.children.Set(p.name, p)
	}
	return params, nil
}

func init() {
	registerSection([]string{"Parameters", "Parameter"}, parseParametersFromElement)
}
