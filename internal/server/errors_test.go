package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/HashiniGamage/CareerNexusModel/internal/forecast"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "email exists", err: &ErrEmailAlreadyExists{Email: "a@example.com"}, want: http.StatusConflict},
		{name: "invalid credentials", err: &ErrInvalidCredentials{}, want: http.StatusUnauthorized},
		{name: "password mismatch", err: &ErrPasswordMismatch{}, want: http.StatusUnauthorized},
		{name: "user not found", err: &ErrUserNotFound{UserID: uuid.New()}, want: http.StatusNotFound},
		{name: "validation", err: &ErrValidation{Field: "email", Message: "required"}, want: http.StatusBadRequest},
		{name: "unsupported industry", err: &forecast.ErrUnsupportedIndustry{Industry: "astrology"}, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "a@example.com"}).Error(), "a@example.com")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())

	id := uuid.New()
	assert.Contains(t, (&ErrUserNotFound{UserID: id}).Error(), id.String())
}
