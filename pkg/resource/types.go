package resource

// DefaultPrimaryKey is the primary-key field assumed when a Type does not
// override it.
const DefaultPrimaryKey = "id"

// Type contains the path and naming metadata for one kind of remote
// resource, plus its declared relationship table. Types are built once at
// definition time and treated as read-only afterwards; they are shared by
// every instance of the resource.
type Type struct {
	// PathSegment is the URL segment for the resource, e.g. "products".
	PathSegment string

	// Singular is the envelope key for single-object responses, e.g. "product".
	Singular string

	// Plural is the envelope key for array responses, e.g. "products".
	Plural string

	// PrimaryKey is the primary-key field name. Empty means DefaultPrimaryKey.
	PrimaryKey string

	// Relationships maps exposed field names to relationship declarations.
	Relationships map[string]Relationship
}

// PrimaryKeyField returns the primary-key field name, applying the default.
func (t *Type) PrimaryKeyField() string {
	if t.PrimaryKey == "" {
		return DefaultPrimaryKey
	}
	return t.PrimaryKey
}

// Relationship returns the declared relationship for a field, if any.
func (t *Type) Relationship(field string) (Relationship, bool) {
	rel, ok := t.Relationships[field]
	return rel, ok
}

// New creates an empty, unsaved instance of this type bound to a runtime.
func (t *Type) New(rt *Runtime) *Instance {
	return newInstance(t, rt)
}
