package blueprint

import (
	"github.com/yosida95/uritemplate/v3"
)

// uriTemplate wraps an RFC 6570 URI Template, as declared in a resource or
// action definition line ("/users/{id}").
type uriTemplate struct {
	tmpl *uritemplate.Template
	raw  string
}

func newURITemplate(raw string) (*uriTemplate, error) {
	t, err := uritemplate.New(raw)
	if err != nil {
		return nil, err
	}
	return &uriTemplate{tmpl: t, raw: raw}, nil
}

func (u *uriTemplate) String() string {
	if u == nil {
		return ""
	}
	return u.raw
}

// expand substitutes values into the template. Only string-valued
// parameters are supported, matching the scalar default/inline values a
// Blueprint Parameters section can declare.
func (u *uriTemplate) expand(values map[string]string) (string, error) {
	if u == nil {
		return "", nil
	}
	vals := uritemplate.Values{}
	for k, v := range values {
		vals = vals.Set(k, uritemplate.String(v))
	}
	return u.tmpl.Expand(vals)
}

// varNames reports which {placeholders} the template declares.
func (u *uriTemplate) varNames() []string {
	if u == nil {
		return nil
	}
	var names []string
	for _, v := range u.tmpl.Varspecs() {
		names = append(names, v.Name)
	}
	return names
}
