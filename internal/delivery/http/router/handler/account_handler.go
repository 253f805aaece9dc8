// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/response"
	"authgate/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account registration request.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "No data provided")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "Email and password are required")
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Signup{
		Message: "User created successfully",
		User:    output.Account,
	})
}

// Login handles the authentication request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "No data provided")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Login{
		Message: "Login successful",
		Token:   output.Token,
		User:    output.Account,
	})
}

// ValidateToken confirms the presented token admitted the request. It runs
// behind the access gate, so reaching it means the token was valid.
func (h *AccountHandler) ValidateToken(c echo.Context) error {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		return response.Unauthorized(c, "Token is invalid or expired")
	}

	return c.JSON(http.StatusOK, response.Signup{
		Message: "Token is valid",
		User:    usecase.NewAccountOutput(account),
	})
}

// Profile returns the authenticated account's profile.
func (h *AccountHandler) Profile(c echo.Context) error {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		return response.Unauthorized(c, "Token is invalid or expired")
	}

	return c.JSON(http.StatusOK, response.Profile{
		User: usecase.NewAccountOutput(account),
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
