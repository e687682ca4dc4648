package resource

// propertyStore backs every instance with two overlaid property maps:
// persisted holds the last-known server state, mutated holds local edits
// not yet saved. On read, mutated shadows persisted. A successful save
// replaces persisted wholesale and empties mutated.
type propertyStore struct {
	persisted map[string]Value
	mutated   map[string]Value
}

func newPropertyStore() *propertyStore {
	return &propertyStore{
		persisted: make(map[string]Value),
		mutated:   make(map[string]Value),
	}
}

// get returns the effective value for a field: mutated first, then
// persisted. Absent fields read as nil with ok=false; never an error.
func (p *propertyStore) get(field string) (Value, bool) {
	if v, ok := p.mutated[field]; ok {
		return v, true
	}
	if v, ok := p.persisted[field]; ok {
		return v, true
	}
	return nil, false
}

// original returns the raw persisted value, ignoring local mutations.
func (p *propertyStore) original(field string) (Value, bool) {
	v, ok := p.persisted[field]
	return v, ok
}

// set records a local edit. The field shadows any persisted value until
// the next successful save.
func (p *propertyStore) set(field string, v Value) {
	p.mutated[field] = v
}

// setPersisted writes directly into the persisted map. Used by the
// relationship resolver to memoize resolved values in place.
func (p *propertyStore) setPersisted(field string, v Value) {
	p.persisted[field] = v
}

// hasPersisted reports whether the persisted map holds the field.
func (p *propertyStore) hasPersisted(field string) bool {
	_, ok := p.persisted[field]
	return ok
}

// replace swaps the persisted map wholesale with the given object and
// drops all local mutations.
func (p *propertyStore) replace(obj map[string]any) {
	persisted := make(map[string]Value, len(obj))
	for k, v := range obj {
		persisted[k] = v
	}
	p.persisted = persisted
	p.mutated = make(map[string]Value)
}

// mutations returns the current local edits. The returned map is the
// store's own; callers must not retain it across a save.
func (p *propertyStore) mutations() map[string]Value {
	return p.mutated
}
