package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"token": map[string]any{
			"secret": "",
		},
	}

	// Segments are aligned with existing YAML keys, preserving their casing.
	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
	assert.Equal(t, "postgres.maxOpenConns", canonicalizeEnvKey("POSTGRES_MAXOPENCONNS", existing))
	assert.Equal(t, "token.secret", canonicalizeEnvKey("TOKEN_SECRET", existing))

	// Unknown segments fall back to plain lower-casing.
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxopenconns", normalizeToken("max-open-conns"))
	assert.Equal(t, "token", normalizeToken("TOKEN"))
}

func TestSigningSecretFallback(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, InsecureDefaultSecret, cfg.SigningSecret())
	assert.True(t, cfg.UsesInsecureSecret())

	cfg.Token.Secret = "a-real-secret"
	assert.Equal(t, "a-real-secret", cfg.SigningSecret())
	assert.False(t, cfg.UsesInsecureSecret())

	// Whitespace-only secrets count as unset.
	cfg.Token.Secret = "   "
	assert.True(t, cfg.UsesInsecureSecret())
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 6, cfg.PasswordMinLength())

	cfg.Token.TTL = time.Hour
	cfg.Auth = &AuthConfig{PasswordMinLength: 8}

	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.Equal(t, 8, cfg.PasswordMinLength())
}
