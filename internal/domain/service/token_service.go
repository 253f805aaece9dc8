package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures of the token codec. Expired and invalid are
// distinguished internally even though the delivery layer surfaces both as the
// same rejection.
var (
	// ErrTokenInvalid is returned for structurally malformed tokens and for
	// tokens whose signature does not match the process secret.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned for well-formed, correctly signed tokens
	// whose expiry is at or before the verification-time clock.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the payload embedded in an issued token: the subject account ID
// (in the registered "sub" claim), a snapshot of the account email at issuance
// time, and the expiry. Claims are immutable once embedded in a token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim back into the account's UUID.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given account, valid for the
	// configured window from now.
	Issue(accountID uuid.UUID, email string) (string, error)

	// Verify checks the integrity and expiry of a token string and returns its
	// claims. Failures are reported as ErrTokenInvalid or ErrTokenExpired;
	// no underlying library error escapes this boundary.
	Verify(tokenString string) (*Claims, error)
}
