package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func TestUserQuery_SkipsZeroFields(t *testing.T) {
	query, err := userQuery(domain.UserFilter{Username: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(query) != 1 || query["username"] != "bob" {
		t.Fatalf("unexpected query: %v", query)
	}

	query, err = userQuery(domain.UserFilter{})
	if err != nil || len(query) != 0 {
		t.Fatalf("expected empty query, got %v %v", query, err)
	}
}

func TestUserQuery_AllFields(t *testing.T) {
	oid := primitive.NewObjectID()
	query, err := userQuery(domain.UserFilter{ID: oid.Hex(), Username: "bob", RoleName: "student"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query["_id"] != oid || query["username"] != "bob" || query["role_name"] != "student" {
		t.Fatalf("unexpected query: %v", query)
	}
}

func TestUserQuery_InvalidID(t *testing.T) {
	if _, err := userQuery(domain.UserFilter{ID: "42"}); err != errInvalidID {
		t.Fatalf("expected errInvalidID, got %v", err)
	}
}

func TestToDomainUser(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	u := toDomainUser(mongoUser{ID: oid, Username: "bob", PasswordHash: "h", RoleName: "student", CreatedAt: created.Unix()})
	if u.ID != oid.Hex() || u.Username != "bob" || u.PasswordHash != "h" || u.RoleName != "student" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !u.CreatedAt.Equal(created) {
		t.Fatalf("expected %v, got %v", created, u.CreatedAt)
	}
	if !toDomainUser(mongoUser{}).CreatedAt.IsZero() {
		t.Fatalf("expected zero time for missing timestamp")
	}
}
