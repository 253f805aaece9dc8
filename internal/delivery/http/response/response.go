// Package response defines the wire bodies of the HTTP API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Message is the minimal body every status-only response carries.
type Message struct {
	Message string `json:"message"`
}

// Signup is the body of a successful registration.
type Signup struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// Login is the body of a successful authentication.
type Login struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    any    `json:"user"`
}

// Profile is the body of the gated profile endpoint.
type Profile struct {
	User any `json:"user"`
}

// WithMessage writes a status-only response.
func WithMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(c echo.Context, message string) error {
	return WithMessage(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(c echo.Context, message string) error {
	return WithMessage(c, http.StatusUnauthorized, message)
}

// Conflict writes a 409 response.
func Conflict(c echo.Context, message string) error {
	return WithMessage(c, http.StatusConflict, message)
}

// InternalServerError writes a 500 response.
func InternalServerError(c echo.Context, message string) error {
	return WithMessage(c, http.StatusInternalServerError, message)
}
