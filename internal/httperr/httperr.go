package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status translates a taxonomy error into an HTTP status code. This is
// the only place the mapping lives.
func Status(err error) int {
	var ve *ValidationError
	var se *StoreError

	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrClientNotFound),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.As(err, &se):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as `{"error": message}` with its mapped status.
func Respond(c *gin.Context, err error) {
	c.JSON(Status(err), gin.H{"error": err.Error()})
}

// Abort is Respond for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(Status(err), gin.H{"error": err.Error()})
}
