package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmodel/shopmodel/pkg/config"
	"github.com/shopmodel/shopmodel/pkg/types"
)

const privateYAML = `
shop: example.myshopify.com
mode: private
label: staging
credentials:
  api_key: key
  password: secret
`

func TestParsePrivate(t *testing.T) {
	conn, err := config.Parse([]byte(privateYAML))
	require.NoError(t, err)
	assert.Equal(t, "example.myshopify.com", conn.Shop)
	assert.Equal(t, types.AuthPrivate, conn.Mode)
	assert.Equal(t, "key", conn.Credentials.APIKey)
	assert.Equal(t, "secret", conn.Credentials.Password)
	assert.Equal(t, "staging", conn.Label)
}

func TestParsePublic(t *testing.T) {
	conn, err := config.Parse([]byte(`
shop: example.myshopify.com
mode: public
credentials:
  api_key: key
  secret: shared
  token: access
`))
	require.NoError(t, err)
	assert.Equal(t, types.AuthPublic, conn.Mode)
	assert.Equal(t, "access", conn.Credentials.Token)
}

func TestParseRejectsIncompleteCredentials(t *testing.T) {
	_, err := config.Parse([]byte(`
shop: example.myshopify.com
mode: private
credentials:
  api_key: key
`))
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "incomplete_credentials", cfgErr.Code)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("shop: [unclosed"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connection.yaml")
	require.NoError(t, os.WriteFile(path, []byte(privateYAML), 0o600))

	conn, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example.myshopify.com", conn.Shop)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
