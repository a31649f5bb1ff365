package models

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"USER", RoleUser, false},
		{"admin", RoleAdmin, false},
		{"  Admin ", RoleAdmin, false},
		{"", "", true},
		{"ROOT", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseRole(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestRolePredicates(t *testing.T) {
	if !RoleAdmin.IsAdmin() || RoleUser.IsAdmin() {
		t.Error("IsAdmin wrong")
	}
	if !RoleUser.Valid() || Role("GUEST").Valid() {
		t.Error("Valid wrong")
	}
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	data, err := json.Marshal(User{Email: "a@b.co", Password: "hash", Role: RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["password"]; ok {
		t.Errorf("password serialized: %s", data)
	}
	if m["role"] != "ADMIN" {
		t.Errorf("role = %v", m["role"])
	}
}

func TestPrincipalIsZero(t *testing.T) {
	if !(Principal{}).IsZero() {
		t.Error("empty principal not zero")
	}
	if (Principal{Email: "a@b.co"}).IsZero() {
		t.Error("principal with email reported zero")
	}
}
