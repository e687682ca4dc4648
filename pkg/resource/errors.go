package resource

import (
	"github.com/shopmodel/shopmodel/pkg/types"
)

// ConfigurationError is re-exported so callers holding only this package
// can match connection setup failures with errors.As.
type ConfigurationError = types.ConfigurationError

// ErrNoConnection reports that an operation ran without an established
// connection.
func ErrNoConnection() *ConfigurationError {
	return types.NewConfigurationError("no_connection",
		"no connection established; call Set on the connection handle first")
}

// RelationalAccessError reports a field read through the relationship path
// that is not declared in the owning type's relationship table. It
// indicates a programming error in the caller.
type RelationalAccessError struct {
	Type  string `json:"type"`
	Field string `json:"field"`
}

// Error implements the error interface.
func (e *RelationalAccessError) Error() string {
	return "field " + e.Field + " is not a declared relationship of " + e.Type
}

// errNotRelational constructs a RelationalAccessError for a type and field.
func errNotRelational(t *Type, field string) *RelationalAccessError {
	return &RelationalAccessError{Type: t.Singular, Field: field}
}
