package resource

import (
	"context"
	"fmt"
)

// Instance is one hydrated record of a resource type. Reads go through the
// persisted/mutated overlays; reads of declared relationship fields enter
// the resolver, which memoizes its result back into the persisted map so
// each relationship resolves at most once per instance lifetime (until a
// save replaces the persisted map wholesale).
type Instance struct {
	typ   *Type
	rt    *Runtime
	props *propertyStore
}

func newInstance(t *Type, rt *Runtime) *Instance {
	return &Instance{
		typ:   t,
		rt:    rt,
		props: newPropertyStore(),
	}
}

// Type returns the instance's resource type metadata.
func (i *Instance) Type() *Type {
	return i.typ
}

// IsNew reports whether the instance has never been persisted: true iff
// the primary-key field is absent from the persisted properties.
func (i *Instance) IsNew() bool {
	return !i.props.hasPersisted(i.typ.PrimaryKeyField())
}

// ID returns the persisted primary-key value, or nil when new.
func (i *Instance) ID() Value {
	return i.primaryKeyValue()
}

func (i *Instance) primaryKeyValue() Value {
	v, _ := i.props.original(i.typ.PrimaryKeyField())
	return v
}

// Set records a local edit. The value shadows the persisted one until the
// next successful Save.
func (i *Instance) Set(field string, v Value) {
	i.props.set(field, v)
}

// Lookup returns the effective value for a field without triggering
// relationship resolution: mutated shadows persisted, absent reads as
// nil with ok=false.
func (i *Instance) Lookup(field string) (Value, bool) {
	return i.props.get(field)
}

// Original returns the raw persisted value for a field, bypassing local
// mutations. It never triggers relationship resolution.
func (i *Instance) Original(field string) Value {
	v, _ := i.props.original(field)
	return v
}

// Get reads a field. Declared relationship fields dispatch into the
// resolver and may issue a transport call; any other field follows plain
// read precedence and never errors. Absent fields read as nil.
func (i *Instance) Get(ctx context.Context, field string) (Value, error) {
	if rel, ok := i.typ.Relationship(field); ok {
		return i.resolve(ctx, field, rel)
	}
	v, _ := i.props.get(field)
	return v, nil
}

// Relation forces the relationship path for a field. Reading a field that
// is not declared as a relationship fails with a RelationalAccessError.
func (i *Instance) Relation(ctx context.Context, field string) (Value, error) {
	rel, ok := i.typ.Relationship(field)
	if !ok {
		return nil, errNotRelational(i.typ, field)
	}
	return i.resolve(ctx, field, rel)
}

// Save persists local mutations: POST for a new instance, PUT with the
// primary-key value otherwise. On success the persisted properties are
// replaced wholesale by the server's response and mutations are cleared.
func (i *Instance) Save(ctx context.Context) error {
	return i.rt.save(ctx, i)
}

// Destroy deletes the record remotely. The instance is not locally marked
// deleted.
func (i *Instance) Destroy(ctx context.Context) error {
	return i.rt.destroy(ctx, i)
}

// throughSegment makes a live instance usable as a Through parent scope:
// "{pathSegment}/{primaryKeyValue}".
func (i *Instance) throughSegment() (string, error) {
	if i.IsNew() {
		return "", fmt.Errorf("cannot nest under unsaved %s", i.typ.Singular)
	}
	return i.typ.PathSegment + "/" + formatID(i.primaryKeyValue()), nil
}

// resolve turns a declared relationship into its value. Resolution order:
//
//  1. Memoization: an already-resolved value (instance or collection) in
//     the persisted map is returned as-is, with no transport call.
//  2. Includes kinds reuse raw JSON embedded by a parent fetch when
//     present; otherwise they issue one nested fetch. Has kinds always
//     list the target type, HasOne keeping only the first element.
//  3. The resolved value is written back into the persisted map,
//     overwriting any raw embedded JSON.
func (i *Instance) resolve(ctx context.Context, field string, rel Relationship) (Value, error) {
	raw, present := i.props.original(field)
	switch raw.(type) {
	case *Instance, Collection:
		return raw, nil
	}

	var resolved Value
	switch rel.Kind {
	case IncludesMany:
		if arr, ok := raw.([]any); present && ok {
			col, err := i.rt.buildCollection(rel.Target, arr)
			if err != nil {
				return nil, err
			}
			resolved = col
		} else {
			col, err := i.rt.AllThrough(ctx, rel.Target, i, rel.params(i))
			if err != nil {
				return nil, err
			}
			resolved = col
		}

	case IncludesOne:
		if obj, ok := raw.(map[string]any); present && ok {
			resolved = i.rt.buildResource(rel.Target, obj)
		} else {
			linkVal, ok := i.Lookup(rel.linkKeyField())
			if !ok || linkVal == nil {
				return nil, nil
			}
			inst, err := i.rt.Find(ctx, rel.Target, linkVal, rel.params(i))
			if err != nil {
				return nil, err
			}
			resolved = inst
		}

	case HasMany:
		col, err := i.rt.All(ctx, rel.Target, rel.params(i))
		if err != nil {
			return nil, err
		}
		resolved = col

	case HasOne:
		col, err := i.rt.All(ctx, rel.Target, rel.params(i))
		if err != nil {
			return nil, err
		}
		first := col.First()
		if first == nil {
			return nil, nil
		}
		resolved = first

	default:
		return nil, fmt.Errorf("unknown relationship kind %q on %s.%s", rel.Kind, i.typ.Singular, field)
	}

	i.props.setPersisted(field, resolved)
	return resolved, nil
}
