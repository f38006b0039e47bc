package blueprint

// resolveAttributeReferences rewrites every resource/action Attributes
// section that was declared as an "Attributes (Name)" reference into the
// named Attributes section it points at, and propagates a resource's
// resolved attributes down into any action whose own Attributes section was
// identical to the resource's (i.e. it was inherited, not separately
// declared), per the reference parser's _apply_attributes_references.
// A name that matches no named Attributes section leaves the reference in
// place; no warning is emitted for it.
func resolveAttributeReferences(b *Blueprint) {
	for _, r := range b.Resources() {
		old := r.attributes
		if old != nil {
			if refName, ok := old.Reference(); ok {
				if resolved, found := b.attrsByName[refName]; found {
					r.attributes = resolved
				}
			}
		}
		for _, a := range r.Actions() {
			switch {
			case a.attributes == old:
				a.attributes = r.attributes
			case a.attributes != nil:
				if refName, ok := a.attributes.Reference(); ok {
					if resolved, found := b.attrsByName[refName]; found {
						a.attributes = resolved
					}
				}
			}
		}
	}
}

// resolveModelReferences resolves every DataStructure declared as a bare
// "[Name][]" reference to the data structure it points at, and every
// Request/Response/Model payload declared the same way to the resource
// Model with that name. The reference implementation left this step
// unimplemented (_apply_model_reference was a no-op); this completes it so
// "[Coordinates][]"-style references actually resolve to their target's
// attributes instead of silently vanishing. A reference naming no data
// structure or resource model is left unresolved, with its reference kept
// and no warning emitted.
func resolveModelReferences(b *Blueprint) {
	for pair := b.dataStructures.Oldest(); pair != nil; pair = pair.Next() {
		ds := pair.Value
		refName, ok := ds.Reference()
		if !ok {
			continue
		}
		if target, found := b.dataStructures.Get(refName); found {
			ds.value = target.value
			ds.typ = target.typ
		}
	}

	models := map[string]*Model{}
	for _, r := range b.Resources() {
		if r.model != nil && r.name != "" {
			models[r.name] = r.model
		}
	}
	resolvePayloadModelRef := func(p *payload) {
		refName, ok := p.Reference()
		if !ok {
			return
		}
		if target, found := models[refName]; found {
			if p.name == "" {
				p.name = target.name
			}
			p.description = target.description
			p.media = target.media
			p.headers = target.headers
			p.attributes = target.attributes
			p.body = target.body
			p.schema = target.schema
		}
	}
	for _, a := range b.Actions() {
		for _, req := range a.Requests() {
			resolvePayloadModelRef(&req.payload)
		}
		for _, responses := range a.responses {
			for _, resp := range responses {
				resolvePayloadModelRef(&resp.payload)
			}
		}
	}
}
