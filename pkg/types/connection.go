package types

// AuthMode represents the authentication mode of a shop connection as a
// string type. Using strings allows direct matching with YAML/JSON config
// values and makes adding new modes non-breaking.
type AuthMode string

const (
	// AuthPrivate authenticates with a private app's API key and password
	// via HTTP basic auth.
	AuthPrivate AuthMode = "private"

	// AuthPublic authenticates with a public app's access token obtained
	// through the OAuth flow.
	AuthPublic AuthMode = "public"
)

// String implements the Stringer interface.
func (m AuthMode) String() string {
	return string(m)
}

// ParseAuthMode converts a string to an AuthMode.
// Returns the AuthMode and true if valid, or empty and false if unknown.
func ParseAuthMode(s string) (AuthMode, bool) {
	m := AuthMode(s)
	switch m {
	case AuthPrivate, AuthPublic:
		return m, true
	default:
		return "", false
	}
}

// Credentials holds the secret material for a connection. Which fields are
// required depends on the AuthMode.
type Credentials struct {
	// APIKey is the app's API key. Required in both modes.
	APIKey string `json:"apiKey" yaml:"api_key"`

	// Password is the private app password. Required in private mode.
	Password string `json:"password" yaml:"password"`

	// Secret is the shared app secret. Required in public mode.
	Secret string `json:"secret" yaml:"secret"`

	// Token is the OAuth access token. Required in public mode.
	Token string `json:"token" yaml:"token"`
}

// Connection describes one authenticated shop endpoint.
type Connection struct {
	// Shop is the shop host, e.g. "example.myshopify.com".
	Shop string `json:"shop" yaml:"shop"`

	// Mode selects how requests are authenticated.
	Mode AuthMode `json:"mode" yaml:"mode"`

	// Credentials is the secret material matching Mode.
	Credentials Credentials `json:"credentials" yaml:"credentials"`

	// Label is an optional human-readable name for the connection.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Validate checks that the connection's credentials match its auth mode.
// Returns a *ConfigurationError describing the first problem found.
func (c Connection) Validate() error {
	if c.Shop == "" {
		return NewConfigurationError("missing_shop", "connection has no shop host")
	}
	switch c.Mode {
	case AuthPrivate:
		if c.Credentials.APIKey == "" || c.Credentials.Password == "" {
			return NewConfigurationError("incomplete_credentials",
				"private mode requires an API key and password")
		}
	case AuthPublic:
		if c.Credentials.APIKey == "" || c.Credentials.Secret == "" || c.Credentials.Token == "" {
			return NewConfigurationError("incomplete_credentials",
				"public mode requires an API key, secret, and access token")
		}
	default:
		return NewConfigurationError("unknown_mode",
			"auth mode must be \"private\" or \"public\"")
	}
	return nil
}
