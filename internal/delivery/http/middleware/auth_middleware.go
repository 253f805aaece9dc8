package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
)

// keyAccount is the echo.Context key the authenticated account is stored under.
const keyAccount = "account"

// The four rejection cases are internally distinct but surface uniformly as
// 401 so callers cannot branch on the outcome class.
const (
	msgTokenMissing          = "Token is missing"
	msgTokenInvalidOrExpired = "Token is invalid or expired"
	msgAccountUnavailable    = "User not found or inactive"
)

// AuthMiddleware is the access gate: it converts a raw bearer credential into
// an authenticated account or a rejection.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accounts repository.AccountRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accounts repository.AccountRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accounts: accounts, logger: logger}
}

// Authenticate validates the bearer token, resolves the account and forwards
// it to the downstream handler via the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, msgTokenMissing)
		}

		// The prefix is optional: a bare token is accepted as-is.
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, msgTokenInvalidOrExpired)
		}

		accountID, err := claims.AccountID()
		if err != nil {
			return response.Unauthorized(c, msgTokenInvalidOrExpired)
		}

		account, err := m.accounts.FindByID(c.Request().Context(), accountID)
		if err != nil {
			// Unexpected repository failures collapse to the same rejection;
			// only the log distinguishes them.
			if !errors.Is(err, repository.ErrAccountNotFound) {
				m.log(c).Error("Failed to resolve account for token", slog.Any("accountID", accountID), slog.Any("error", err))
			}

			return response.Unauthorized(c, msgAccountUnavailable)
		}
		if !account.IsActive {
			return response.Unauthorized(c, msgAccountUnavailable)
		}

		c.Set(keyAccount, account)

		return next(c)
	}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// CurrentAccount returns the account the access gate resolved for this request.
// It must be called downstream of Authenticate.
func CurrentAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(keyAccount).(*entity.Account)

	return account, ok
}
