// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity of the system, representing a registered credential holder.
// The PasswordHash field is internal state and must never be exposed through any
// outward projection of the account.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email        string    // The normalized (trimmed, lowercased) login identifier. Unique across accounts.
	PasswordHash string    // The salted hash of the account's password. Never serialized.
	IsActive     bool      // Whether the account may authenticate and access gated resources.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
