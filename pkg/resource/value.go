package resource

// Value is a single property value. Values come straight out of decoded
// JSON (nil, bool, float64, string, map[string]any, []any) or are results
// of relationship resolution (*Instance, Collection). Absent fields read
// as nil; no type coercion happens anywhere in the core.
type Value = any

// Params is a set of request parameters. Sent as a query string on GET and
// DELETE, and as the JSON request body on POST and PUT.
type Params = map[string]any

// Payload is a decoded JSON response body. The transport contract
// guarantees a top-level key equal to the relevant singular or plural
// resource name.
type Payload = map[string]any

// Collection is an ordered sequence of hydrated instances. Order is the
// server-returned order; collections are never deduplicated or sorted.
type Collection []*Instance

// First returns the first instance, or nil if the collection is empty.
func (c Collection) First() *Instance {
	if len(c) == 0 {
		return nil
	}
	return c[0]
}
