package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authgate/config"
	"authgate/internal/domain/service"
)

func newTestTokenService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token.Secret = secret
	cfg.Token.TTL = 24 * time.Hour

	svc, err := NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing")

	accountID := uuid.New()
	email := "user@example.com"

	token, err := svc.Issue(accountID, email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	gotID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, gotID)
	assert.Equal(t, email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing")

	// Mint a token whose validity window already elapsed.
	jwtSvc := svc.(*jwtService)
	token, err := jwtSvc.issueAt(uuid.New(), "user@example.com", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing")

	token, err := svc.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	// Flip the last byte of the signature.
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'a' {
		tampered += "b"
	} else {
		tampered += "a"
	}

	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "issuer_secret_key_very_long_for_testing")
	verifier := newTestTokenService(t, "another_secret_key_very_long_for_testing")

	token, err := issuer.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing")

	for _, tokenString := range []string{"", "garbage", "a.b.c", "only.two"} {
		claims, err := svc.Verify(tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	}
}

func TestJWTService_InsecureDefaultSecretStillWorks(t *testing.T) {
	// Blank secret falls back to the documented insecure default; the
	// constructor warns but does not fail.
	svc := newTestTokenService(t, "")

	token, err := svc.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.NoError(t, err)
}
