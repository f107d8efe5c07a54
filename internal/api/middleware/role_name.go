package middleware

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/core/domain"
)

const (
	MaxRoleNameLength = 32

	MsgRoleNameAdmin   = "Role name can not be admin"
	MsgRoleNameTooLong = "Role name can not be longer than 32 chars"
)

// ValidateRoleName trims the body's role_name in place, defaulting it to
// "student" when missing or blank.
func ValidateRoleName(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := Body(c)
		if err != nil {
			return err
		}

		roleName, err := NormalizeRoleName(body.RoleName)
		body.RoleName = roleName
		if err != nil {
			return err
		}
		return next(c)
	}
}

// NormalizeRoleName returns the value to store for raw along with the
// validation error, if any. The normalized value is returned even on error.
func NormalizeRoleName(raw string) (string, error) {
	roleName := strings.TrimFunc(raw, isTrimmable)
	if roleName == "" {
		return domain.RoleStudent, nil
	}

	if roleName == domain.RoleAdmin {
		return roleName, reject("role_name_validator", http.StatusUnprocessableEntity, MsgRoleNameAdmin)
	}
	if utf8.RuneCountInString(roleName) > MaxRoleNameLength {
		return roleName, reject("role_name_validator", http.StatusUnprocessableEntity, MsgRoleNameTooLong)
	}
	return roleName, nil
}

// isTrimmable matches whitespace plus the byte order mark, which JSON clients
// sometimes leave at the start of a value.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
