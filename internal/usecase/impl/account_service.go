// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"
)

// emailPattern accepts the standard local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts          repository.AccountRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	passwordMinLength int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Accounts     repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minLength := 0
	if params.Config != nil {
		minLength = params.Config.PasswordMinLength()
	}

	return &accountService{
		accounts:          params.Accounts,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		passwordMinLength: minLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates registration: normalize and validate the email, enforce
// the password floor, reject duplicates, then hash and persist.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if !emailPattern.MatchString(email) {
		return nil, domainerrors.ErrInvalidEmail.WrapMessage("signup rejected")
	}

	if len(input.Password) < srv.passwordMinLength {
		return nil, domainerrors.ErrPasswordTooShort.WrapMessage("signup rejected")
	}

	exists, err := srv.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to check for existing account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check for existing account")
	}
	if exists {
		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("signup rejected")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := srv.accounts.Create(ctx, account); err != nil {
		// The exists-check above races with concurrent signups; the unique
		// constraint is the authoritative duplicate detector.
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("signup rejected")
		}
		srv.log(ctx).Error("Failed to create account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", account.ID))

	return &usecase.SignupOutput{Account: usecase.NewAccountOutput(account)}, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password surface as the same ErrInvalidCredentials; a deactivated
// account with a correct password is the distinct ErrAccountDeactivated.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting login", slog.String("email", email))

	account, err := srv.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
		}
		srv.log(ctx).Error("Failed to find account for login", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	if !account.IsActive {
		return nil, domainerrors.ErrAccountDeactivated.WrapMessage("login rejected")
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:   token,
		Account: usecase.NewAccountOutput(account),
	}, nil
}

// normalizeEmail applies the canonical form used for validation, storage and
// lookup: trimmed and lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
