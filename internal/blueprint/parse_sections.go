package blueprint

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// structuralParser walks the flat, normalised element sequence and buckets
// it into ResourceGroup/Resource/Action/DataStructure spans by heading
// level, the way the reference parser's recursive _parse/_parse_resource_group
// /_parse_resource functions do.
type structuralParser struct {
	blueprint      *Blueprint
	warn           bperrors.WarnSink
	implicitAction bool
}

// parseBody splits children[index:] into top-level spans — each run of
// elements up to (but not including) the next heading at the same or
// shallower level — and dispatches each span to parseResourceGroup,
// parseDataStructures or parseResource depending on its leading heading.
func (p *structuralParser) parseBody(children []*etree.Element, index int) error {
	current := children[index]
	sequence := []*etree.Element{current}
	tag := current.Tag
	group := isGroupHeading(current)
	dataStructures := isDataStructuresHeading(current)

	flush := func(seq []*etree.Element, wasGroup, wasDataStructures bool) error {
		switch {
		case wasGroup:
			return p.parseResourceGroup(seq)
		case wasDataStructures:
			return p.parseDataStructures(seq)
		default:
			return p.parseResource(seq, nil)
		}
	}

	for _, item := range children[index+1:] {
		if isHeader(item) && item.Tag <= tag {
			if err := flush(sequence, group, dataStructures); err != nil {
				return err
			}
			sequence = nil
			tag = item.Tag
			group = isGroupHeading(item)
			if !group {
				dataStructures = isDataStructuresHeading(item)
			}
		}
		sequence = append(sequence, item)
	}
	return flush(sequence, group, dataStructures)
}

func (p *structuralParser) parseResourceGroup(sequence []*etree.Element) error {
	name := strings.TrimSpace(strings.TrimPrefix(sequence[0].Text, "Group"))
	desc, index := parseLeadingDescription(sequence[1:])
	index++ // account for the heading itself
	group := newResourceGroup(name, desc)
	p.blueprint.groups.Set(name, group)
	if len(sequence) <= index {
		return nil
	}
	current := sequence[index]
	var children []*etree.Element
	children = append(children, current)
	tag := current.Tag
	for _, item := range sequence[index+1:] {
		if isHeader(item) && item.Tag <= tag {
			if err := p.parseResource(children, group); err != nil {
				return err
			}
			children = nil
			tag = item.Tag
		}
		children = append(children, item)
	}
	return p.parseResource(children, group)
}

func (p *structuralParser) parseResource(sequence []*etree.Element, group *ResourceGroup) error {
	if group == nil {
		g, ok := p.blueprint.groups.Get("")
		if !ok {
			g = newResourceGroup("", "")
			p.blueprint.groups.Set("", g)
		}
		group = g
	}
	name, method, template, err := parseResourceDefinition(sequence[0].Text)
	if err != nil {
		return err
	}
	desc, index := parseLeadingDescription(sequence[1:])
	index++
	if len(sequence) <= index {
		return nil
	}

	r := &Resource{
		apiSection: apiSection{named: named{name: name, description: desc}, requestMethod: method},
		actions:    orderedmap.New[string, *Action](),
	}
	if template != "" {
		tmpl, err := newURITemplate(template)
		if err != nil {
			return err
		}
		r.uriTemplate = tmpl
	}

	if sequence[index].Tag == etree.TagUL || sequence[index].Tag == etree.TagOL {
		for _, li := range sequence[index].Children {
			section, err := parseSection(li, p.warn, r.ID())
			if err != nil {
				return err
			}
			if section == nil {
				continue
			}
			switch s := section.(type) {
			case *Parameters:
				r.parameters = s
			case *Attributes:
				r.attributes = s
			case *Model:
				r.model = s
			}
		}
		index++
	}
	group.resources.Set(r.ID(), r)
	if r.attributes != nil && r.name != "" {
		p.blueprint.attrsByName[r.name] = r.attributes
	}
	if len(sequence) <= index {
		if p.implicitAction && r.actions.Len() == 0 {
			p.addImplicitAction(r)
		}
		return nil
	}

	for index < len(sequence) && isHeader(sequence[index]) {
		action, next, err := parseActionFromElement(sequence, index, p.warn)
		if err != nil {
			return err
		}
		index = next
		if action.uriTemplate == nil {
			action.uriTemplate = r.uriTemplate
		}
		if action.requestMethod == "" {
			action.requestMethod = r.requestMethod
		}
		r.actions.Set(action.ID(), action)
	}
	if p.implicitAction && r.actions.Len() == 0 && r.requestMethod != "" {
		p.addImplicitAction(r)
	}
	return nil
}

// addImplicitAction gives a resource with no "## " action heading of its
// own a single synthetic action inheriting its method and URI template —
// the common shorthand for a resource whose only operation is its own
// definition line.
func (p *structuralParser) addImplicitAction(r *Resource) {
	a := &Action{
		apiSection: apiSection{named: named{name: ""}, requestMethod: r.requestMethod, uriTemplate: r.uriTemplate},
		requests:   orderedmap.New[string, *Request](),
		responses:  map[int][]*Response{},
	}
	r.actions.Set(a.ID(), a)
}

func (p *structuralParser) parseDataStructures(sequence []*etree.Element) error {
	index := 1
	for index < len(sequence) {
		node := sequence[index]
		index++
		if index >= len(sequence) || sequence[index].Tag != etree.TagUL {
			return &bperrors.InvalidDataStructuresError{Reason: "heading not followed by a bullet list"}
		}
		node.Children = append(node.Children, sequence[index])
		index++
		attr, err := ParseDataStructureFromElement(nil, node)
		if err != nil {
			return err
		}
		p.blueprint.dataStructures.Set(attr.name, attr)
	}
	return nil
}
