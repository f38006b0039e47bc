package blueprint

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// apiSection is embedded by Resource and Action: a named section that also
// carries an HTTP method, a URI template, and its own Parameters/Attributes.
type apiSection struct {
	named
	requestMethod string
	uriTemplate   *uriTemplate
	parameters    *Parameters
	attributes    *Attributes
}

func (a *apiSection) RequestMethod() string      { return a.requestMethod }
func (a *apiSection) URITemplate() *uriTemplate  { return a.uriTemplate }
func (a *apiSection) Parameters() *Parameters    { return a.parameters }
func (a *apiSection) Attributes() *Attributes    { return a.attributes }

// ID returns the section's identity for indexing: its declared name, or
// failing that "METHOD /template".
func (a *apiSection) ID() string {
	if a.name != "" {
		return a.name
	}
	var b strings.Builder
	if a.requestMethod != "" {
		b.WriteString(a.requestMethod)
		b.WriteByte(' ')
	}
	if a.uriTemplate != nil {
		b.WriteString(a.uriTemplate.String())
	}
	return strings.TrimSpace(b.String())
}

func (a *apiSection) fixParents(parent Section) {
	fixChild(a.parameters, a)
	fixChild(a.attributes, a)
}

// inheritedParameterValues merges default/inline parameter values from
// ancestors, outer to inner — a resource's parameter values, then an
// action's own, later entries overriding earlier ones.
func inheritedParameterValues(levels ...*Parameters) map[string]string {
	values := map[string]string{}
	for _, params := range levels {
		if params == nil {
			continue
		}
		for _, p := range params.All() {
			if dv, ok := p.DefaultValue(); ok {
				values[p.Name()] = dv
			}
			if v, ok := p.Value().(string); ok {
				values[p.Name()] = v
			}
		}
	}
	return values
}

// Relation is the "+ Relation: name" bullet linking an action to a named
// resource relation declared elsewhere in the document.
type Relation struct {
	base
	linkID string
}

func (*Relation) nestedSectionID() string { return "relation" }

func (r *Relation) LinkID() string { return r.linkID }

func (r *Relation) String() string { return "Relation " + r.linkID }

func parseRelationFromElement(node *etree.Element, _ bperrors.WarnSink) (registeredSection, error) {
	parts := strings.SplitN(node.Text, ":", 2)
	if len(parts) != 2 {
		return nil, &bperrors.InvalidAttributeFormatError{Line: node.Text}
	}
	return &Relation{linkID: strings.TrimSpace(parts[1])}, nil
}

func init() {
	registerSection([]string{"Relation"}, parseRelationFromElement)
}

// httpMethods lists the verbs a bare resource definition line may lead with,
// distinguishing "GET /users" (method + template) from "/users" (template
// only, method inherited from an action below).
var httpMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true, "HEAD": true,
}

// Action is one "## METHOD /template" (or "## Name [METHOD /template]")
// section inside a Resource: its Relation, inherited and own
// Parameters/Attributes, and the Request/Response pairs declared under it.
type Action struct {
	apiSection
	relation  *Relation
	requests  *orderedmap.OrderedMap[string, *Request]
	responses map[int][]*Response
}

func (a *Action) Relation() *Relation { return a.relation }

func (a *Action) Requests() []*Request {
	if a.requests == nil {
		return nil
	}
	out := make([]*Request, 0, a.requests.Len())
	for pair := a.requests.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (a *Action) ResponsesByCode() map[int][]*Response { return a.responses }

// RequestsView returns the (request, responses) pairs to iterate, mirroring
// Action.__iter__: when no Request was declared at all, a synthetic
// "default" request carrying the action's own attributes stands in.
func (a *Action) RequestsView() []struct {
	Request   *Request
	Responses []*Response
} {
	var out []struct {
		Request   *Request
		Responses []*Response
	}
	if a.requests == nil || a.requests.Len() == 0 {
		var all []*Response
		for _, rs := range a.responses {
			all = append(all, rs...)
		}
		def := &Request{payload: payload{named: named{name: "default"}, attributes: a.attributes}}
		def.setParent(a)
		out = append(out, struct {
			Request   *Request
			Responses []*Response
		}{def, all})
		return out
	}
	for _, req := range a.Requests() {
		var resps []*Response
		for _, r := range req.responses {
			resps = append(resps, r)
		}
		out = append(out, struct {
			Request   *Request
			Responses []*Response
		}{req, resps})
	}
	return out
}

func (a *Action) Len() int {
	if a.requests == nil || a.requests.Len() == 0 {
		return 1
	}
	return a.requests.Len()
}

func (a *Action) fixParents(parent Section) {
	a.apiSection.fixParents(parent)
	fixChild(a.relation, a)
	for _, r := range a.Requests() {
		fixChild(r, a)
	}
	for _, rs := range a.responses {
		for _, r := range rs {
			fixChild(r, a)
		}
	}
}

// URI expands the action's URI template, merging parameter values from the
// enclosing Resource and then the Action's own Parameters, inner values
// winning.
func (a *Action) URI() (string, error) {
	var resourceParams *Parameters
	if r, ok := a.Parent().(*Resource); ok {
		resourceParams = r.parameters
	}
	values := inheritedParameterValues(resourceParams, a.parameters)
	return a.uriTemplate.expand(values)
}

func (a *Action) String() string {
	if a.name == "" {
		return "Action " + a.requestMethod
	}
	var mid strings.Builder
	if a.requestMethod != "" {
		mid.WriteString(a.requestMethod)
		mid.WriteByte(' ')
	}
	if a.uriTemplate != nil {
		mid.WriteString(a.uriTemplate.String())
	}
	if mid.Len() == 0 {
		return "Action " + a.name
	}
	return "Action " + a.name + " [" + strings.TrimSpace(mid.String()) + "]"
}

// parseActionDefinition parses an action heading's text — "Name [METHOD
// /template]" or bare "METHOD" — per Action.parse_definition.
func parseActionDefinition(txt string) (name, method, template string, err error) {
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return "", "", "", &bperrors.InvalidDefinitionError{Keyword: "action", Line: txt}
	}
	if txt[len(txt)-1] == ']' {
		inner, ok := isBracketed(txt, '[', ']')
		if !ok {
			return "", "", "", &bperrors.InvalidDefinitionError{Keyword: "action", Line: txt}
		}
		bracket := strings.LastIndexByte(txt, '[')
		name = strings.TrimSpace(txt[:bracket])
		method, template = splitOnFirstSpaceOrTab(strings.TrimSpace(inner))
		if template == "" {
			method, template = inner, ""
		}
		return name, method, template, nil
	}
	return "", txt, "", nil
}

// parseActionFromElement parses one action heading plus its description and
// nested bullet list out of the flattened element sequence starting at
// index, returning the built Action and the index just past its bullets.
func parseActionFromElement(sequence []*etree.Element, index int, warn bperrors.WarnSink) (*Action, int, error) {
	name, method, template, err := parseActionDefinition(sequence[index].Text)
	if err != nil {
		return nil, index, err
	}
	desc, consumed := parseDescription(sequence[index+1:], etree.TagUL)
	index = index + 1 + consumed

	a := &Action{
		apiSection: apiSection{named: named{name: name, description: desc}, requestMethod: method},
		requests:   orderedmap.New[string, *Request](),
		responses:  map[int][]*Response{},
	}
	if template != "" {
		tmpl, err := newURITemplate(template)
		if err != nil {
			return nil, index, err
		}
		a.uriTemplate = tmpl
	}

	if len(sequence) > index && sequence[index].Tag == etree.TagUL {
		var currentRequests []*Request
		clearOnNext := false
		for _, li := range sequence[index].Children {
			section, err := parseSection(li, warn, a.ID())
			if err != nil {
				return nil, index, err
			}
			if section == nil {
				continue
			}
			switch s := section.(type) {
			case *Request:
				if clearOnNext {
					currentRequests = nil
					clearOnNext = false
				}
				currentRequests = append(currentRequests, s)
				a.requests.Set(requestKey(s, a.requests.Len()), s)
			case *Response:
				clearOnNext = true
				last := len(currentRequests) - 1
				for i, req := range currentRequests {
					resp := s
					if i != last {
						dup := *s
						resp = &dup
					}
					resp.request = req
					req.addResponse(resp)
					a.responses[resp.HTTPCode()] = append(a.responses[resp.HTTPCode()], resp)
				}
				if len(currentRequests) == 0 {
					a.responses[s.HTTPCode()] = append(a.responses[s.HTTPCode()], s)
				}
			case *Relation:
				a.relation = s
			case *Parameters:
				a.parameters = s
			case *Attributes:
				a.attributes = s
			}
		}
		index++
	}

	for _, req := range a.Requests() {
		if req.attributes == nil {
			req.attributes = a.attributes
		}
	}
	return a, index, nil
}

func requestKey(r *Request, ordinal int) string {
	if r.name != "" {
		return r.name
	}
	r.name = "#" + strconv.Itoa(ordinal)
	return r.name
}
