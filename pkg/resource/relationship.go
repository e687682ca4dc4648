package resource

// Kind classifies how a relationship is resolved.
type Kind string

const (
	// IncludesOne is a single nested object. Resolved from JSON already
	// embedded in the parent response when present, otherwise fetched with
	// Find using the linking key read off the owner.
	IncludesOne Kind = "includes_one"

	// IncludesMany is a nested array. Resolved from embedded JSON when
	// present, otherwise fetched with AllThrough nested under the owner.
	IncludesMany Kind = "includes_many"

	// HasOne is resolved by listing the target type and taking the first
	// element. This mirrors the remote API's documented behavior; no
	// dedicated single-record endpoint is used.
	HasOne Kind = "has_one"

	// HasMany is resolved by an unscoped list on the target type. Any
	// owner-based filtering comes entirely from the declared ParamsFunc.
	HasMany Kind = "has_many"
)

// ParamsFunc produces extra query parameters for resolving a relationship.
// It runs at resolution time, so parameters can depend on the owning
// instance's current properties. A nil ParamsFunc means no parameters.
//
// The owner is passed explicitly: relationship tables are shared per-Type,
// so the function cannot close over a particular instance.
type ParamsFunc func(owner *Instance) Params

// Relationship declares one lazily-resolved association from an owning
// resource type to a target type. Declared once at type-definition time
// and never mutated per-instance.
type Relationship struct {
	// Kind selects the resolution strategy.
	Kind Kind

	// Target is the resource type the relationship resolves into.
	Target *Type

	// Params produces extra request parameters at resolution time.
	Params ParamsFunc

	// LinkKey overrides the field used to find the foreign-key value for
	// IncludesOne fetches. Empty means "{target.Singular}_id".
	LinkKey string
}

// linkKeyField returns the owner field holding the target's id.
func (r Relationship) linkKeyField() string {
	if r.LinkKey != "" {
		return r.LinkKey
	}
	return r.Target.Singular + "_id"
}

// params evaluates the ParamsFunc, tolerating nil.
func (r Relationship) params(owner *Instance) Params {
	if r.Params == nil {
		return Params{}
	}
	return r.Params(owner)
}
