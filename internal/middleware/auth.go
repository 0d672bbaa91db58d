package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/novareservas/reservation-api/internal/auth"
	"github.com/novareservas/reservation-api/internal/httperr"
)

const (
	ContextClientID    = "clientID"
	ContextClientEmail = "clientEmail"
)

// AuthMiddleware gates mutation routes behind a bearer token. It runs
// before any handler, so an unauthenticated request never reaches the
// store. The decoded identity is attached to the context but does not
// scope queries: any authenticated client may act on any record.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, httperr.ErrMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, httperr.ErrMissingToken)
			return
		}

		identity, err := tokens.Verify(parts[1])
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		c.Set(ContextClientID, identity.ClientID)
		c.Set(ContextClientEmail, identity.Email)

		c.Next()
	}
}
