package services

import (
	"classifieds/models"
	"context"
	"errors"
	"testing"
)

func registerRequest(email, role string) models.RegisterRequest {
	return models.RegisterRequest{
		Username:  email,
		Password:  "password1",
		FirstName: "Ann",
		LastName:  "Lee",
		Phone:     "+7 (900) 123-45-67",
		Role:      role,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ok, err := f.auth.Register(ctx, registerRequest("ann@example.com", ""))
	if err != nil || !ok {
		t.Fatalf("Register = %v, %v", ok, err)
	}

	stored, err := f.store.Users().FindByEmail(ctx, "ann@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Role != models.RoleUser {
		t.Errorf("default role = %q", stored.Role)
	}
	if stored.Password != "hashed:password1" {
		t.Errorf("password stored as %q", stored.Password)
	}

	t.Run("duplicate email", func(t *testing.T) {
		ok, err := f.auth.Register(ctx, registerRequest("ann@example.com", ""))
		if err != nil || ok {
			t.Errorf("Register = %v, %v", ok, err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		ok, err := f.auth.Register(ctx, registerRequest("bob@example.com", "ROOT"))
		if err != nil || ok {
			t.Errorf("Register = %v, %v", ok, err)
		}
	})

	t.Run("admin role", func(t *testing.T) {
		ok, err := f.auth.Register(ctx, registerRequest("root@example.com", "ADMIN"))
		if err != nil || !ok {
			t.Fatalf("Register = %v, %v", ok, err)
		}
		admin, _ := f.store.Users().FindByEmail(ctx, "root@example.com")
		if admin.Role != models.RoleAdmin {
			t.Errorf("role = %q", admin.Role)
		}
	})
}

func TestRegisterAdminSignupDisabled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAuthService(f.store.Users(), plainEncoder{}, staticTokens{}, false)

	ok, err := svc.Register(ctx, registerRequest("root@example.com", "ADMIN"))
	if err != nil || ok {
		t.Fatalf("Register(ADMIN) = %v, %v", ok, err)
	}
	if exists, _ := f.store.Users().ExistsByEmail(ctx, "root@example.com"); exists {
		t.Error("admin account created while signup is disabled")
	}

	ok, err = svc.Register(ctx, registerRequest("ann@example.com", "USER"))
	if err != nil || !ok {
		t.Errorf("Register(USER) = %v, %v", ok, err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	if _, err := f.auth.Register(ctx, registerRequest("ann@example.com", "")); err != nil {
		t.Fatal(err)
	}

	token, err := f.auth.Login(ctx, models.LoginRequest{Username: "ann@example.com", Password: "password1"})
	if err != nil || token != "token-for-ann@example.com" {
		t.Fatalf("Login = %q, %v", token, err)
	}

	for _, req := range []models.LoginRequest{
		{Username: "ann@example.com", Password: "wrongpass"},
		{Username: "ghost@example.com", Password: "password1"},
	} {
		if _, err := f.auth.Login(ctx, req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%s) err = %v", req.Username, err)
		}
	}
}
