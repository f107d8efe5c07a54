package middleware

import (
	"net/http"
	"strings"
	"testing"
)

func TestValidateRoleName_Normalizes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing", `{"username":"bob"}`, "student"},
		{"blank", `{"role_name":"  "}`, "student"},
		{"empty", `{"role_name":""}`, "student"},
		{"plain", `{"role_name":"teacher"}`, "teacher"},
		{"trimmed", `{"role_name":"  teacher \t"}`, "teacher"},
		{"uppercase admin", `{"role_name":"Admin"}`, "Admin"},
		{"exactly 32", `{"role_name":"` + strings.Repeat("a", 32) + `"}`, strings.Repeat("a", 32)},
		{"32 runes multibyte", `{"role_name":"` + strings.Repeat("é", 32) + `"}`, strings.Repeat("é", 32)},
		{"bom only", `{"role_name":"\ufeff"}`, "student"},
		{"bom trimmed", `{"role_name":"\ufeffteacher"}`, "teacher"},
		{"32 after trim", `{"role_name":"  ` + strings.Repeat("a", 32) + `  "}`, strings.Repeat("a", 32)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, strings.NewReader(tc.body))

			called := false
			if err := ValidateRoleName(okHandler(&called))(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if !called {
				t.Fatalf("next not called")
			}
			body, _ := Body(c)
			if body.RoleName != tc.want {
				t.Fatalf("expected role_name %q, got %q", tc.want, body.RoleName)
			}
		})
	}
}

func TestValidateRoleName_Rejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"admin", `{"role_name":"admin"}`, MsgRoleNameAdmin},
		{"padded admin", `{"role_name":"  admin  "}`, MsgRoleNameAdmin},
		{"bom admin", `{"role_name":"\ufeffadmin"}`, MsgRoleNameAdmin},
		{"nbsp admin", `{"role_name":"\u00a0admin\u00a0"}`, MsgRoleNameAdmin},
		{"33 chars", `{"role_name":"` + strings.Repeat("a", 33) + `"}`, MsgRoleNameTooLong},
		{"33 runes multibyte", `{"role_name":"` + strings.Repeat("é", 33) + `"}`, MsgRoleNameTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, strings.NewReader(tc.body))

			err := ValidateRoleName(mustNotRun(t))(c)
			expectHTTPError(t, err, http.StatusUnprocessableEntity, tc.msg)
		})
	}
}

func TestNormalizeRoleName_Idempotent(t *testing.T) {
	for _, raw := range []string{"teacher", " instructor ", "", "   "} {
		once, err := NormalizeRoleName(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
		twice, err := NormalizeRoleName(once)
		if err != nil {
			t.Fatalf("%q: unexpected error on second pass %v", raw, err)
		}
		if once != twice {
			t.Fatalf("%q: %q != %q", raw, once, twice)
		}
	}
}

func TestNormalizeRoleName_KeepsTrimmedValueOnError(t *testing.T) {
	got, err := NormalizeRoleName(" admin ")
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != "admin" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}
