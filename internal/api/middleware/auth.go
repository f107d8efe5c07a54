package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/pkg/token"
)

const (
	MsgTokenRequired = "Token required"
	MsgTokenInvalid  = "Token invalid"
)

// TokenVerifier verifies a raw token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*token.Claims, error)
}

// Restricted verifies the token carried verbatim in the Authorization header
// and attaches its claims to the context before calling next.
func Restricted(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				return reject("token_gate", http.StatusUnauthorized, MsgTokenRequired)
			}

			claims, err := verifier.Verify(c.Request().Context(), raw)
			if err != nil {
				if errors.Is(err, token.ErrInvalid) {
					return reject("token_gate", http.StatusUnauthorized, MsgTokenInvalid)
				}
				return err
			}

			c.Set(DecodedTokenKey, claims)
			return next(c)
		}
	}
}
