package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

const MsgInvalidCredentials = "Invalid credentials"

// CheckUsernameExists looks up the body's username and attaches the first
// matching user to the context. Storage errors are returned untouched.
func CheckUsernameExists(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := Body(c)
			if err != nil {
				return err
			}

			filter := domain.UserFilter{Username: body.Username}
			if filter.IsEmpty() {
				return reject("credential_lookup", http.StatusUnauthorized, MsgInvalidCredentials)
			}

			found, err := users.FindBy(c.Request().Context(), filter)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				return reject("credential_lookup", http.StatusUnauthorized, MsgInvalidCredentials)
			}

			existing := found[0]
			c.Set(UserKey, &existing)
			return next(c)
		}
	}
}
