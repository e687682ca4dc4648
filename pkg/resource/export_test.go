package resource

// export_test.go exposes unexported helpers for testing via the
// resource_test package. This is the idiomatic Go pattern for testing
// internal behavior without import cycles.

// BuildPathForTest exposes buildPath.
func BuildPathForTest(through, segment, id string) string {
	return buildPath(through, segment, id)
}

// FormatIDForTest exposes formatID.
func FormatIDForTest(id any) string {
	return formatID(id)
}

// BuildResourceForTest exposes hydration of a raw JSON object.
func (rt *Runtime) BuildResourceForTest(t *Type, obj map[string]any) *Instance {
	return rt.buildResource(t, obj)
}

// MutationCountForTest returns the number of pending local edits.
func MutationCountForTest(i *Instance) int {
	return len(i.props.mutations())
}

// PersistedForTest returns the raw persisted value for a field.
func PersistedForTest(i *Instance, field string) (Value, bool) {
	return i.props.original(field)
}
