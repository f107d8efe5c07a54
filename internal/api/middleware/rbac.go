package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const MsgNotForYou = "This is not for you"

// Only lets the request through when the decoded token's role_name is exactly
// roleName. It must be mounted after Restricted.
func Only(roleName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := DecodedToken(c)
			if !ok || claims.RoleName != roleName {
				return reject("role_gate", http.StatusForbidden, MsgNotForYou)
			}
			return next(c)
		}
	}
}
