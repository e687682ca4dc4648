package types

// ConfigurationError reports a connection that is missing, unset, or
// carrying credentials that do not match its auth mode. It is always fatal
// to the calling operation and never retried.
type ConfigurationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Message
}

// NewConfigurationError constructs a ConfigurationError with a stable code
// and a human-readable message.
func NewConfigurationError(code, message string) *ConfigurationError {
	return &ConfigurationError{Code: code, Message: message}
}
