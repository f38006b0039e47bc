// Package blueprint implements the two-stage API Blueprint structural parser:
// turning a normalised Markdown element tree into a typed graph of resource
// groups, resources, actions and data structures, then resolving the
// cross-references between them.
package blueprint

// Section is the common shape of every typed node in the document graph: it
// always has a parent, set exactly once, the first time the node is attached
// somewhere. The root Blueprint itself has a nil parent.
type Section interface {
	Parent() Section
	setParent(Section)
}

// base is embedded by every concrete section type. It mirrors the reference
// implementation's weakref-based back-pointer; Go has no tracing-collector
// cycle to worry about; a plain pointer is enough.
type base struct {
	parent Section
}

func (b *base) Parent() Section { return b.parent }

func (b *base) setParent(p Section) {
	if b.parent == nil {
		b.parent = p
	}
}

// named is embedded by every section that carries a name and free-text
// description (attributes, payloads, resources, actions, groups).
type named struct {
	base
	name        string
	description string
}

func (n *named) Name() string { return n.name }

func (n *named) Description() string { return n.description }

// fixParents walks the set of a node's owned children, assigning itself as
// their parent if they don't already have one. Each concrete type overrides
// this to list its own nested fields; the zero-value implementation is a
// no-op for leaf sections.
type parentFixer interface {
	fixParents(parent Section)
}

func fixChild(child Section, parent Section) {
	if child == nil {
		return
	}
	child.setParent(parent)
	if pf, ok := child.(parentFixer); ok {
		pf.fixParents(parent)
	}
}
