// Package server provides the HTTP REST API for the career forecaster.
package server

import (
	"fmt"
	"net/http"

	"github.com/HashiniGamage/CareerNexusModel/internal/forecast"
	"github.com/google/uuid"
)

// ErrEmailAlreadyExists is returned when registering an email that
// already has an account.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials covers both unknown email and wrong password,
// so responses cannot be used to probe which emails are registered.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound is returned when a user ID has no matching account.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch is returned when the current password given in a
// password change does not verify.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation is returned for malformed or incomplete request bodies.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps a service error to its response status. Anything
// unrecognized is a 500.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrValidation, *forecast.ErrUnsupportedIndustry:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
