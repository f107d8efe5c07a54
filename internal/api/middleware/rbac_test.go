package middleware

import (
	"net/http"
	"testing"

	"github.com/99minutos/auth-service/internal/pkg/token"
)

func TestOnly_Allows(t *testing.T) {
	c, rec := newContext(http.MethodGet, nil)
	c.Set(DecodedTokenKey, &token.Claims{RoleName: "instructor"})

	called := false
	if err := Only("instructor")(okHandler(&called))(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOnly_Forbids(t *testing.T) {
	for _, role := range []string{"student", "Admin", "admin ", ""} {
		c, _ := newContext(http.MethodGet, nil)
		c.Set(DecodedTokenKey, &token.Claims{RoleName: role})

		err := Only("admin")(mustNotRun(t))(c)
		expectHTTPError(t, err, http.StatusForbidden, MsgNotForYou)
	}
}

func TestOnly_MissingClaims(t *testing.T) {
	c, _ := newContext(http.MethodGet, nil)

	err := Only("admin")(mustNotRun(t))(c)
	expectHTTPError(t, err, http.StatusForbidden, MsgNotForYou)
}
