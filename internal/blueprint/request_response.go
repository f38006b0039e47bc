package blueprint

import (
	"strconv"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// Request is one "+ Request" bullet inside an Action: an optional name (used
// to disambiguate several requests under the same action), its own
// Headers/Attributes/Body/Schema, and the Responses it was paired with
// during parsing.
type Request struct {
	payload
	responses []*Response
}

func (*Request) nestedSectionID() string { return "requests" }

// Responses returns the responses recorded against this request, keyed by
// HTTP status code. A later response for the same code overwrites an
// earlier one, matching the reference implementation's dict comprehension.
func (r *Request) Responses() map[int]*Response {
	out := make(map[int]*Response, len(r.responses))
	for _, resp := range r.responses {
		out[resp.HTTPCode()] = resp
	}
	return out
}

func (r *Request) addResponse(resp *Response) {
	r.responses = append(r.responses, resp)
}

func (r *Request) fixParents(parent Section) {
	r.payload.fixParents(parent)
}

// URI expands the enclosing Action's URI template using parameter values
// inherited from the Resource and then overridden by the Action.
func (r *Request) URI() (string, error) {
	action, ok := r.Parent().(*Action)
	if !ok {
		return "", &bperrors.InvalidBuilderStateError{Reason: "request has no enclosing action"}
	}
	return action.URI()
}

// Response is one "+ Response" bullet inside an Action, identified by its
// HTTP status code (defaulting to 200 when no code was given).
type Response struct {
	payload
	request *Request
}

func (*Response) nestedSectionID() string { return "responses" }

// HTTPCode parses the response's name as its status code, returning 200 for
// an unnamed response (the Blueprint "default Response" shorthand).
func (r *Response) HTTPCode() int {
	if r.name == "" {
		return 200
	}
	code, err := strconv.Atoi(r.name)
	if err != nil {
		return 200
	}
	return code
}

// Request returns the Request this response was paired with while parsing,
// if any.
func (r *Response) Request() *Request { return r.request }

func parseRequestFromElement(node *etree.Element, warn bperrors.WarnSink) (registeredSection, error) {
	p, ref, err := parseRRPayload("Request", node, warn)
	if err != nil {
		return nil, err
	}
	r := &Request{payload: *p}
	r.reference, r.hasRef = ref, ref != ""
	return r, nil
}

func parseResponseFromElement(node *etree.Element, warn bperrors.WarnSink) (registeredSection, error) {
	p, ref, err := parseRRPayload("Response", node, warn)
	if err != nil {
		return nil, err
	}
	r := &Response{payload: *p}
	r.reference, r.hasRef = ref, ref != ""
	return r, nil
}

// parseRRPayload parses a Request/Response bullet the way
// RRPredefinedPayloadSection.parse_from_etree does: as a predefined payload,
// additionally recognising the "[Name][]" reference shorthand when the
// bullet carries no Headers/Attributes/Body/Schema of its own and has
// exactly one plain paragraph or code-block child.
func parseRRPayload(keyword string, node *etree.Element, warn bperrors.WarnSink) (*payload, string, error) {
	p, err := parsePredefinedPayload(keyword, node, warn)
	if err != nil {
		return nil, "", err
	}
	if p.headers == nil && p.attributes == nil && p.schema == nil &&
		len(node.Children) == 1 && (node.Children[0].Tag == etree.TagP || node.Children[0].Tag == etree.TagPre) {
		if ref, ok := extractReference(etree.PreContents(node.Children[0])); ok {
			p.body = nil
			return p, ref, nil
		}
	}
	return p, "", nil
}

func init() {
	registerSection([]string{"Request"}, parseRequestFromElement)
	registerSection([]string{"Response"}, parseResponseFromElement)
}
