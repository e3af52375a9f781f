// Package apperr defines the error kinds surfaced by the API and their HTTP mapping.
package apperr

import (
	"errors"
	"net/http"

	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/gin-gonic/gin"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
)

// Error carries a human readable message and unwraps to one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// Status maps an error to its HTTP status. Unknown errors are internal.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Respond writes {error} for err. Internal errors are logged and replaced by
// fallback so no storage detail reaches the client.
func Respond(c *gin.Context, err error, fallback string) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	var ae *Error
	if errors.As(err, &ae) {
		c.JSON(status, gin.H{"error": ae.Message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
