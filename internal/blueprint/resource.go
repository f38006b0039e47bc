package blueprint

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
)

// Resource is one "## Name [METHOD /template]" section inside a
// ResourceGroup: its own Parameters/Attributes/Model, and the Actions
// declared beneath it.
type Resource struct {
	apiSection
	model   *Model
	actions *orderedmap.OrderedMap[string, *Action]
}

func (r *Resource) Model() *Model { return r.model }

func (r *Resource) Actions() []*Action {
	if r.actions == nil {
		return nil
	}
	out := make([]*Action, 0, r.actions.Len())
	for pair := r.actions.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (r *Resource) Len() int {
	if r.actions == nil {
		return 0
	}
	return r.actions.Len()
}

// URI expands the resource's own URI template using only its own parameter
// values — actions below inherit and may override them.
func (r *Resource) URI() (string, error) {
	return r.uriTemplate.expand(inheritedParameterValues(r.parameters))
}

func (r *Resource) fixParents(parent Section) {
	r.apiSection.fixParents(parent)
	fixChild(r.model, r)
	for _, a := range r.Actions() {
		fixChild(a, r)
	}
}

func (r *Resource) String() string {
	var b strings.Builder
	b.WriteString("Resource ")
	bracketed := r.requestMethod != "" || r.uriTemplate != nil
	if r.name != "" {
		b.WriteString(r.name)
		b.WriteByte(' ')
		if bracketed {
			b.WriteByte('[')
		}
	}
	var mid strings.Builder
	if r.requestMethod != "" {
		mid.WriteString(r.requestMethod)
		mid.WriteByte(' ')
	}
	if r.uriTemplate != nil {
		mid.WriteString(r.uriTemplate.String())
	}
	b.WriteString(strings.TrimSpace(mid.String()))
	if r.name != "" && bracketed {
		b.WriteByte(']')
	}
	return b.String()
}

// parseResourceDefinition parses a resource heading's text — "Name [METHOD
// /template]", "METHOD /template" or a bare "/template" — per
// Resource.parse_definition.
func parseResourceDefinition(txt string) (name, method, template string, err error) {
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return "", "", "", &bperrors.InvalidDefinitionError{Keyword: "resource", Line: txt}
	}
	if txt[len(txt)-1] == ']' {
		inner, ok := isBracketed(txt, '[', ']')
		if !ok {
			return "", "", "", &bperrors.InvalidDefinitionError{Keyword: "resource", Line: txt}
		}
		bracket := strings.LastIndexByte(txt, '[')
		name = strings.TrimSpace(txt[:bracket])
		head, rest := splitOnFirstSpaceOrTab(strings.TrimSpace(inner))
		if rest != "" {
			method, template = head, rest
		} else {
			template = inner
		}
		return name, method, template, nil
	}
	head, rest := splitOnFirstSpaceOrTab(txt)
	if rest != "" {
		if httpMethods[head] {
			return "", head, rest, nil
		}
		return "", "", txt, nil
	}
	return "", "", txt, nil
}

// ResourceGroup is a "# Group Name" section of the document, an ordered,
// name-keyed collection of Resources. The unnamed group (empty name) holds any
// top-level resources declared outside of an explicit group.
type ResourceGroup struct {
	named
	resources *orderedmap.OrderedMap[string, *Resource]
}

func newResourceGroup(name, description string) *ResourceGroup {
	return &ResourceGroup{named: named{name: name, description: description}, resources: orderedmap.New[string, *Resource]()}
}

func (g *ResourceGroup) Get(id string) (*Resource, bool) {
	return g.resources.Get(id)
}

func (g *ResourceGroup) Resources() []*Resource {
	out := make([]*Resource, 0, g.resources.Len())
	for pair := g.resources.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (g *ResourceGroup) Len() int { return g.resources.Len() }

func (g *ResourceGroup) fixParents(parent Section) {
	for _, r := range g.Resources() {
		fixChild(r, g)
	}
}

func (g *ResourceGroup) String() string {
	actions := 0
	for _, r := range g.Resources() {
		actions += r.Len()
	}
	return "ResourceGroup with " + strconv.Itoa(g.Len()) + " resources (" + strconv.Itoa(actions) + " actions)"
}
