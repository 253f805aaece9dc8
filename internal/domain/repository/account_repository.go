// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateAccount is returned when a create collides with an existing email.
var ErrDuplicateAccount = errors.New("account already exists")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ExistsByEmail reports whether an account with the normalized email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error
}
