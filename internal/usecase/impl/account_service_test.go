package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accounts     *mockAccountRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	accounts := &mockAccountRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Auth: &config.AuthConfig{PasswordMinLength: 6}}

	service := NewAccountService(AccountServiceParams{
		Accounts:     accounts,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	t.Cleanup(func() {
		accounts.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenService.AssertExpectations(t)
	})

	return accountServiceFixtures{
		service:      service,
		accounts:     accounts,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	// Mixed case plus whitespace must normalize before every other step.
	input := &usecase.SignupInput{Email: "  User@Example.com ", Password: "secret1"}

	fx.accounts.On("ExistsByEmail", ctx, "user@example.com").Return(false, nil)
	fx.hasher.On("Hash", "secret1").Return("hashed_password", nil)
	fx.accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", output.Account.Email)
	assert.True(t, output.Account.IsActive)
	assert.NotEmpty(t, output.Account.ID)
}

func TestAccountService_Signup_InvalidEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	for _, email := range []string{"not-an-email", "missing@tld", "@example.com", ""} {
		_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: email, Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail, "email: %q", email)
	}
}

func TestAccountService_Signup_PasswordTooShort(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "user@example.com", Password: "12345"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accounts.On("ExistsByEmail", ctx, "user@example.com").Return(true, nil)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "User@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Signup_DuplicateRaceOnCreate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	// The pre-check passes but a concurrent signup wins the insert.
	fx.accounts.On("ExistsByEmail", ctx, "user@example.com").Return(false, nil)
	fx.hasher.On("Hash", "secret1").Return("hashed_password", nil)
	fx.accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateAccount)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "user@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Signup_RepositoryFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accounts.On("ExistsByEmail", ctx, "user@example.com").Return(false, errors.New("connection refused"))

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "user@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "user@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.accounts.On("FindByEmail", ctx, "user@example.com").Return(account, nil)
	fx.hasher.On("Check", "secret1", "hashed_password").Return(true)
	fx.tokenService.On("Issue", accountID, "user@example.com").Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "User@Example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, accountID.String(), output.Account.ID)
	assert.Equal(t, "user@example.com", output.Account.Email)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accounts.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.accounts.On("FindByEmail", ctx, "user@example.com").Return(account, nil)
	fx.hasher.On("Check", "wrong", "hashed_password").Return(false)

	// Wrong password and unknown email must be indistinguishable.
	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed_password",
		IsActive:     false,
	}

	fx.accounts.On("FindByEmail", ctx, "user@example.com").Return(account, nil)
	fx.hasher.On("Check", "secret1", "hashed_password").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "user@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.accounts.On("FindByEmail", ctx, "user@example.com").Return(account, nil)
	fx.hasher.On("Check", "secret1", "hashed_password").Return(true)
	fx.tokenService.On("Issue", accountID, "user@example.com").Return("", errors.New("signing failed"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
