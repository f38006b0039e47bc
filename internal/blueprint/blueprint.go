package blueprint

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// Blueprint is a fully parsed and reference-resolved API Blueprint document:
// its metadata, name, overview, resource groups and top-level data
// structures, plus a path trie for URI-based action lookup.
type Blueprint struct {
	metadata       *orderedmap.OrderedMap[string, string]
	name           string
	overview       string
	groups         *orderedmap.OrderedMap[string, *ResourceGroup]
	dataStructures *orderedmap.OrderedMap[string, *DataStructure]
	trie           *pathTrie
	attrsByName    map[string]*Attributes
}

// Metadata returns the document's "Key: Value" header lines in declaration
// order, e.g. FORMAT, HOST.
func (b *Blueprint) Metadata() *orderedmap.OrderedMap[string, string] { return b.metadata }

// Format returns the document's FORMAT metadata entry.
func (b *Blueprint) Format() (string, bool) { return b.metadata.Get("FORMAT") }

func (b *Blueprint) Name() string     { return b.name }
func (b *Blueprint) Overview() string { return b.overview }

// Groups returns the resource groups in declaration order. Resources
// declared outside of any "# Group ..." heading live in a group whose Name
// is empty.
func (b *Blueprint) Groups() []*ResourceGroup {
	out := make([]*ResourceGroup, 0, b.groups.Len())
	for pair := b.groups.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// DataStructures returns the top-level "# Data Structures" entries, keyed by
// name.
func (b *Blueprint) DataStructures() *orderedmap.OrderedMap[string, *DataStructure] {
	return b.dataStructures
}

// Resources iterates every resource across every group, in declaration
// order.
func (b *Blueprint) Resources() []*Resource {
	var out []*Resource
	for _, g := range b.Groups() {
		out = append(out, g.Resources()...)
	}
	return out
}

// Actions iterates every action across every resource, in declaration
// order.
func (b *Blueprint) Actions() []*Action {
	var out []*Action
	for _, r := range b.Resources() {
		out = append(out, r.Actions()...)
	}
	return out
}

func (b *Blueprint) CountResources() int { return len(b.Resources()) }
func (b *Blueprint) CountActions() int   { return len(b.Actions()) }

func (b *Blueprint) String() string {
	format, _ := b.Format()
	return "APIBlueprint \"" + b.name + "\", format " + format + ", with " +
		strconv.Itoa(len(b.Groups())) + " resource groups (" +
		strconv.Itoa(b.CountResources()) + " resources, " + strconv.Itoa(b.CountActions()) + " actions)"
}

// Options configure Parse.
type Options struct {
	Warn               bperrors.WarnSink
	DisableImplicitAction bool
}

// Option mutates Options.
type Option func(*Options)

// WithWarnSink overrides the warning sink used for non-fatal section
// parsing diagnostics. Defaults to StderrWarnSink.
func WithWarnSink(w bperrors.WarnSink) Option {
	return func(o *Options) { o.Warn = w }
}

// WithWarnings(false) swaps in bperrors.NopWarnSink so every warning is
// discarded; WithWarnings(true) leaves the configured sink unchanged.
func WithWarnings(enabled bool) Option {
	return func(o *Options) {
		if !enabled {
			o.Warn = bperrors.NopWarnSink{}
		}
	}
}

// WithImplicitAction controls whether a resource with no "## " action
// headings of its own is given a single synthetic action inheriting the
// resource's method and template. Defaults to true.
func WithImplicitAction(enabled bool) Option {
	return func(o *Options) { o.DisableImplicitAction = !enabled }
}

// Parse builds a Blueprint from a normalised element tree (see
// internal/etree.Parse), running the structural parse followed by reference
// resolution.
func Parse(root *etree.Element, opts ...Option) (*Blueprint, error) {
	options := Options{Warn: bperrors.StderrWarnSink{}}
	for _, opt := range opts {
		opt(&options)
	}

	children := root.Children
	if len(children) < 3 {
		return nil, &bperrors.DocumentError{Err: &bperrors.TooFewRootChildrenError{Got: len(children)}}
	}
	if children[0].Tag != etree.TagP {
		return nil, &bperrors.DocumentError{Err: &bperrors.MissingMetadataError{}}
	}

	b := &Blueprint{
		metadata:       orderedmap.New[string, string](),
		groups:         orderedmap.New[string, *ResourceGroup](),
		dataStructures: orderedmap.New[string, *DataStructure](),
		attrsByName:    map[string]*Attributes{},
	}
	for _, line := range strings.Split(children[0].Text, "\n") {
		colon := strings.IndexByte(line, ':')
		if colon < 1 {
			return nil, &bperrors.DocumentError{Err: &bperrors.InvalidMetadataLineError{Line: line}}
		}
		b.metadata.Set(line[:colon], strings.TrimSpace(line[colon+1:]))
	}
	if _, ok := b.metadata.Get("FORMAT"); !ok {
		return nil, &bperrors.DocumentError{Err: &bperrors.MissingFormatMetadataError{}}
	}

	if children[1].Tag != "h1" {
		return nil, &bperrors.DocumentError{Err: &bperrors.MissingNameError{}}
	}
	b.name = children[1].Text

	index := 2
	if children[2].Tag == etree.TagP {
		b.overview = children[2].Text
		index = 3
	}

	p := &structuralParser{blueprint: b, warn: options.Warn, implicitAction: !options.DisableImplicitAction}
	if err := p.parseBody(children, index); err != nil {
		return nil, err
	}

	for _, g := range b.Groups() {
		g.fixParents(nil)
	}

	b.trie = buildTrie(b.Actions())
	resolveAttributeReferences(b)
	resolveModelReferences(b)

	return b, nil
}

func isHeader(e *etree.Element) bool { return e.IsHeader() }

func isGroupHeading(e *etree.Element) bool {
	return isHeader(e) && strings.HasPrefix(e.Text, "Group")
}

func isDataStructuresHeading(e *etree.Element) bool {
	return isHeader(e) && e.Text == "Data Structures"
}
