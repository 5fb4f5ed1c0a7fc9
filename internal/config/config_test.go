package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteConfigured(t *testing.T) {
	c := &Config{APIBaseURL: ""}
	assert.False(t, c.RemoteConfigured())

	c.APIBaseURL = "https://your-mock-server-url.mock.pstmn.io"
	assert.False(t, c.RemoteConfigured(), "placeholder URL counts as unconfigured")

	c.APIBaseURL = "https://api.example.com"
	assert.True(t, c.RemoteConfigured())
}

func TestValidate(t *testing.T) {
	c := &Config{Env: "development", StorageBackend: "memory"}
	assert.NoError(t, c.Validate())

	c.StorageBackend = "postgres"
	assert.Error(t, c.Validate(), "postgres requires a DSN")
	c.PostgresDSN = "postgres://localhost/wellness"
	assert.NoError(t, c.Validate())

	c.Env = "production"
	assert.Error(t, c.Validate(), "production requires a JWT secret or auth service")
	c.JWTSecret = "secret"
	assert.NoError(t, c.Validate())

	c.Env = "banana"
	assert.Error(t, c.Validate())
}

func TestFromEnvDefaults(t *testing.T) {
	c := FromEnv()
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "memory", c.StorageBackend)
	assert.Equal(t, 72, c.TokenTTLHours)
	assert.Equal(t, ":8088", c.Addr)
}
