package blueprint

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
)

// Merge incorporates other into b: names are joined with " & ", overviews
// concatenated, and every resource group/resource of other that b does not
// already own is deep-copied in under its own identity. Two blueprints that
// declare the same top-level data-structure name, or whose merged action set
// would contain two actions resolving to the same id, are a merge conflict
// and b is left unmodified.
func (b *Blueprint) Merge(other *Blueprint) error {
	for pair := other.dataStructures.Oldest(); pair != nil; pair = pair.Next() {
		if _, exists := b.dataStructures.Get(pair.Key); exists {
			return &bperrors.MergeConflictError{Kind: "data structure", ID: pair.Key}
		}
	}

	seen := map[string]bool{}
	for _, a := range b.Actions() {
		seen[a.ID()] = true
	}
	for _, a := range other.Actions() {
		if seen[a.ID()] {
			return &bperrors.MergeConflictError{Kind: "action", ID: a.ID()}
		}
	}

	b.name = joinNonEmpty(b.name, other.name, " & ")
	b.overview = b.overview + other.overview

	for pair := other.dataStructures.Oldest(); pair != nil; pair = pair.Next() {
		b.dataStructures.Set(pair.Key, cloneDataStructure(pair.Value))
	}

	for _, g := range other.Groups() {
		if existing, ok := b.groups.Get(g.name); ok {
			for _, r := range g.Resources() {
				if mine, ok := existing.resources.Get(r.ID()); ok {
					for _, a := range r.Actions() {
						mine.actions.Set(a.ID(), cloneAction(a))
					}
					continue
				}
				existing.resources.Set(r.ID(), cloneResource(r))
			}
			continue
		}
		b.groups.Set(g.name, cloneResourceGroup(g))
	}

	// Parent fix-up: every node copied above (or already owned) gets its
	// parent back-link rebuilt from scratch, the way a deep copy's stale
	// links are repaired after merging.
	for _, group := range b.Groups() {
		group.fixParents(nil)
	}
	b.trie = buildTrie(b.Actions())
	return nil
}

func joinNonEmpty(a, c, sep string) string {
	switch {
	case a == "":
		return c
	case c == "":
		return a
	default:
		return a + sep + c
	}
}

func cloneResourceGroup(g *ResourceGroup) *ResourceGroup {
	out := newResourceGroup(g.name, g.description)
	for _, r := range g.Resources() {
		out.resources.Set(r.ID(), cloneResource(r))
	}
	return out
}

func cloneResource(r *Resource) *Resource {
	out := &Resource{
		apiSection: cloneAPISection(r.apiSection),
		actions:    orderedmap.New[string, *Action](),
	}
	if r.model != nil {
		m := cloneModel(r.model)
		out.model = m
	}
	for _, a := range r.Actions() {
		out.actions.Set(a.ID(), cloneAction(a))
	}
	return out
}

func cloneAPISection(a apiSection) apiSection {
	out := apiSection{
		named:         named{name: a.name, description: a.description},
		requestMethod: a.requestMethod,
		uriTemplate:   a.uriTemplate,
	}
	if a.parameters != nil {
		out.parameters = cloneParameters(a.parameters)
	}
	if a.attributes != nil {
		out.attributes = cloneAttributes(a.attributes)
	}
	return out
}

func cloneAction(a *Action) *Action {
	out := &Action{
		apiSection: cloneAPISection(a.apiSection),
		requests:   orderedmap.New[string, *Request](),
		responses:  map[int][]*Response{},
	}
	if a.relation != nil {
		rel := *a.relation
		out.relation = &rel
	}

	cloned := map[*Response]*Response{}
	for _, req := range a.Requests() {
		nr := cloneRequest(req)
		out.requests.Set(req.name, nr)
		for _, resp := range req.responses {
			nresp, ok := cloned[resp]
			if !ok {
				nresp = cloneResponse(resp)
				cloned[resp] = nresp
			}
			nresp.request = nr
			nr.addResponse(nresp)
		}
	}
	for code, list := range a.responses {
		for _, resp := range list {
			nresp, ok := cloned[resp]
			if !ok {
				nresp = cloneResponse(resp)
				cloned[resp] = nresp
			}
			out.responses[code] = append(out.responses[code], nresp)
		}
	}
	return out
}

func clonePayload(p payload) payload {
	out := payload{
		named:     named{name: p.name, description: p.description},
		keyword:   p.keyword,
		media:     p.media,
		reference: p.reference,
		hasRef:    p.hasRef,
	}
	if p.headers != nil {
		out.headers = cloneHeaders(p.headers)
	}
	if p.attributes != nil {
		out.attributes = cloneAttributes(p.attributes)
	}
	if p.body != nil {
		b := *p.body
		out.body = &b
	}
	if p.schema != nil {
		s := *p.schema
		out.schema = &s
	}
	return out
}

func cloneRequest(r *Request) *Request {
	return &Request{payload: clonePayload(r.payload)}
}

func cloneResponse(r *Response) *Response {
	return &Response{payload: clonePayload(r.payload)}
}

func cloneModel(m *Model) *Model {
	return &Model{payload: clonePayload(m.payload)}
}

func cloneHeaders(h *Headers) *Headers {
	out := &Headers{entries: orderedmap.New[string, string]()}
	for _, pair := range h.All() {
		out.entries.Set(pair.Key, pair.Value)
	}
	return out
}

func cloneAttributes(a *Attributes) *Attributes {
	if a.hasRef {
		return newAttributes(nil, nil, a.reference, true)
	}
	var children []*Attribute
	for _, c := range a.All() {
		children = append(children, cloneAttribute(c))
	}
	return newAttributes(nil, children, "", false)
}

func cloneAttribute(a *Attribute) *Attribute {
	out := &Attribute{named: named{name: a.name, description: a.description}, typ: a.typ}
	if a.required != nil {
		v := *a.required
		out.required = &v
	}
	switch v := a.value.(type) {
	case []*Attribute:
		children := make([]*Attribute, len(v))
		for i, c := range v {
			children[i] = cloneAttribute(c)
		}
		out.value = children
	default:
		out.value = v
	}
	return out
}

func cloneDataStructure(d *DataStructure) *DataStructure {
	return &DataStructure{Attribute: *cloneAttribute(&d.Attribute), reference: d.reference, hasRef: d.hasRef}
}

func cloneParameters(p *Parameters) *Parameters {
	out := &Parameters{children: orderedmap.New[string, *Parameter]()}
	for _, c := range p.All() {
		out.children.Set(c.name, cloneParameter(c))
	}
	return out
}

func cloneParameter(p *Parameter) *Parameter {
	out := &Parameter{
		Attribute:    *cloneAttribute(&p.Attribute),
		defaultValue: p.defaultValue,
		hasDefault:   p.hasDefault,
	}
	for _, m := range p.members {
		member := *m
		out.members = append(out.members, &member)
	}
	return out
}
