// Package usecase defines the application's business operations and their
// input/output contracts.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"
)

// SignupInput carries the credentials submitted to register a new account.
type SignupInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput carries the credentials submitted to authenticate.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountOutput is the canonical outward projection of an account. Every code
// path that returns an account to a caller goes through this shape; the
// password hash is never part of it.
type AccountOutput struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// NewAccountOutput projects an account entity into its outward representation.
func NewAccountOutput(account *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:       account.ID.String(),
		Email:    account.Email,
		IsActive: account.IsActive,
	}
}

// SignupOutput is the result of a successful registration.
type SignupOutput struct {
	Account *AccountOutput
}

// LoginOutput is the result of a successful authentication: the issued bearer
// token plus the account projection.
type LoginOutput struct {
	Token   string
	Account *AccountOutput
}

// AccountUsecase orchestrates signup and login over the hasher, token service
// and account repository.
type AccountUsecase interface {
	// Signup validates, hashes and persists a new account.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
