package blueprint

import (
	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// registeredSection is a Section that knows which field of its enclosing
// resource/action/payload it belongs under once parsed out of a bullet list.
type registeredSection interface {
	Section
	nestedSectionID() string
}

// sectionParser builds a registeredSection from one <li> element of a
// bullet list (a "+ Headers", "+ Body", "+ Attributes" ... item). warn
// receives any further nested dispatch diagnostics (Request/Response/Model
// bodies themselves contain a nested bullet list of sections).
type sectionParser func(node *etree.Element, warn bperrors.WarnSink) (registeredSection, error)

// registry is the Go analogue of the reference parser's self-registering
// section metaclass: each section type registers its own parser under one or
// more keywords during package initialisation, and dispatch is a plain map
// lookup instead of a class hierarchy walk.
var registry = map[string]sectionParser{}

// registerSection installs parse under every name in names. Called only from
// init() functions; a duplicate name is a programming error, not a runtime
// condition, so it panics like a failed assertion would in the source this
// was grounded on.
func registerSection(names []string, parse sectionParser) {
	for _, n := range names {
		if _, exists := registry[n]; exists {
			panic(&bperrors.RegistryConflictError{Keyword: n})
		}
		registry[n] = parse
	}
}

// lookupSection finds the parser registered for a bullet keyword such as
// "Headers", "Body", "Request", "Parameters", ...
func lookupSection(name string) (sectionParser, bool) {
	p, ok := registry[name]
	return p, ok
}

// parseSection dispatches one <li> node through the registry, returning
// (nil, nil) when the keyword isn't recognised — an unknown section is a
// warning in the source this was grounded on, not a hard failure.
func parseSection(li *etree.Element, warn bperrors.WarnSink, context string) (registeredSection, error) {
	name := sectionKeyword(li.Text)
	parse, ok := lookupSection(name)
	if !ok {
		if warn != nil {
			warn.Warnf("section %q is unknown in %s", name, context)
		}
		return nil, nil
	}
	section, err := parse(li, warn)
	if err != nil {
		if warn != nil {
			warn.Warnf("failed to parse section %q in %s: %v", name, context, err)
			return nil, nil
		}
		return nil, &bperrors.SectionError{Section: name, Context: context, Err: err}
	}
	return section, nil
}
