package user

import (
	"testing"
	"time"
)

func TestPrePersistNormalizesEmail(t *testing.T) {
	u := &User{Name: "Ravi", Email: "  Ravi@Example.COM ", Password: "hash"}
	u.prePersist(time.Now().UTC())

	if u.Email != "ravi@example.com" {
		t.Errorf("email = %q, want %q", u.Email, "ravi@example.com")
	}
	if u.Role != RoleUser {
		t.Errorf("role = %q, want %q", u.Role, RoleUser)
	}
	if u.ID.IsZero() {
		t.Error("expected id to be assigned")
	}
}

func TestPrePersistKeepsExplicitRole(t *testing.T) {
	u := &User{Email: "a@b.co", Role: RoleAdmin}
	u.prePersist(time.Now().UTC())

	if u.Role != RoleAdmin {
		t.Errorf("role = %q, want %q", u.Role, RoleAdmin)
	}
}

func TestUpdateSetEmptyWhenNoFields(t *testing.T) {
	// A field-less update must not reach Mongo as an empty $set;
	// Repository.Update falls back to a plain fetch in that case.
	if m := (Update{}).set(); len(m) != 0 {
		t.Errorf("set() = %v, want empty document", m)
	}
}

func TestUpdateSetLowercasesEmail(t *testing.T) {
	email := "New@Example.Com"
	m := Update{Email: &email}.set()

	if got := m["email"]; got != "new@example.com" {
		t.Errorf("email = %q, want %q", got, "new@example.com")
	}
	if _, ok := m["name"]; ok {
		t.Error("name should be absent from a partial update that omits it")
	}
}
