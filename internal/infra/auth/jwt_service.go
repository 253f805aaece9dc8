// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"authgate/config"
	"authgate/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// HMAC-SHA256 signed JWTs. The signing secret is process-wide and read-only
// after construction.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. Running on the insecure
// default secret is allowed but logged as a startup warning.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg == nil {
		return nil, errors.New("token service requires configuration")
	}

	if cfg.UsesInsecureSecret() && logger != nil {
		logger.Warn("Token signing secret is the insecure default; set TOKEN_SECRET before deploying")
	}

	return &jwtService{
		secret: []byte(cfg.SigningSecret()),
		ttl:    cfg.TokenTTL(),
	}, nil
}

// Issue creates a signed token carrying the account ID, an email snapshot and
// an expiry of now plus the configured validity window.
func (s *jwtService) Issue(accountID uuid.UUID, email string) (string, error) {
	return s.issueAt(accountID, email, time.Now())
}

// issueAt exists so tests can mint tokens around a fixed clock.
func (s *jwtService) issueAt(accountID uuid.UUID, email string, now time.Time) (string, error) {
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Verify parses and validates a token string. Expiry uses the verifying
// process's wall clock with no skew tolerance. Any parse or signature failure
// other than expiry is reported as ErrTokenInvalid; no library error escapes.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any signing method other than the HMAC family we issue with.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}
