package services

import (
	"classifieds/models"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGetAuthenticatedUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.user(t, "ann@example.com", models.RoleAdmin)

	dto, err := f.users.GetAuthenticatedUser(ctx, p)
	if err != nil {
		t.Fatalf("GetAuthenticatedUser: %v", err)
	}
	if dto.Email != "ann@example.com" || dto.Role != models.RoleAdmin || dto.Image != nil {
		t.Errorf("dto = %+v", dto)
	}

	if _, err := f.users.GetAuthenticatedUser(ctx, models.Principal{}); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("empty principal err = %v", err)
	}
}

func TestUpdateUserReturnsInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.user(t, "ann@example.com", models.RoleUser)

	input := models.UpdateUserRequest{FirstName: "Anna", LastName: "Smith", Phone: "+7 (911) 000-11-22"}
	got, err := f.users.UpdateUser(ctx, p, input)
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if *got != input {
		t.Errorf("returned %+v, want input %+v", *got, input)
	}

	stored, _ := f.store.Users().FindByEmail(ctx, "ann@example.com")
	if stored.FirstName != "Anna" || stored.LastName != "Smith" || stored.Phone != input.Phone {
		t.Errorf("stored = %+v", stored)
	}
	if stored.Email != "ann@example.com" || stored.Role != models.RoleUser {
		t.Errorf("email or role changed: %+v", stored)
	}
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "ann@example.com", models.RoleUser)

	t.Run("wrong current password", func(t *testing.T) {
		ok, err := f.users.UpdatePassword(ctx, "ann@example.com", "nottheone", "newpassword")
		if err != nil || ok {
			t.Fatalf("UpdatePassword = %v, %v", ok, err)
		}
		stored, _ := f.store.Users().FindByEmail(ctx, "ann@example.com")
		if stored.Password != "hashed:password1" {
			t.Errorf("hash changed to %q", stored.Password)
		}
		if len(f.notifier.notified) != 0 {
			t.Error("notification sent for failed change")
		}
	})

	t.Run("correct current password", func(t *testing.T) {
		ok, err := f.users.UpdatePassword(ctx, "ann@example.com", "password1", "newpassword")
		if err != nil || !ok {
			t.Fatalf("UpdatePassword = %v, %v", ok, err)
		}
		stored, _ := f.store.Users().FindByEmail(ctx, "ann@example.com")
		enc := plainEncoder{}
		if !enc.Matches("newpassword", stored.Password) || enc.Matches("password1", stored.Password) {
			t.Errorf("stored hash %q", stored.Password)
		}
		if len(f.notifier.notified) != 1 {
			t.Errorf("notifications = %v", f.notifier.notified)
		}
	})

	t.Run("notification failure is not returned", func(t *testing.T) {
		f.notifier.err = errors.New("smtp down")
		ok, err := f.users.UpdatePassword(ctx, "ann@example.com", "newpassword", "password2")
		if err != nil || !ok {
			t.Fatalf("UpdatePassword = %v, %v", ok, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := f.users.UpdatePassword(ctx, "ghost@example.com", "a", "b"); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestUpdateAvatar(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.user(t, "ann@example.com", models.RoleUser)

	first, err := f.users.UpdateAvatar(ctx, p, models.NewMemoryFile("me.png", []byte("one")))
	if err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}
	second, err := f.users.UpdateAvatar(ctx, p, models.NewMemoryFile("me.webp", []byte("two")))
	if err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}

	names := f.avatars.names()
	if len(names) != 1 || names[0] != second || first == second {
		t.Fatalf("avatars = %v (first %s, second %s)", names, first, second)
	}
	if !strings.HasSuffix(second, ".webp") {
		t.Errorf("second = %q", second)
	}

	dto, _ := f.users.GetAuthenticatedUser(ctx, p)
	if dto.Image == nil || *dto.Image != "/avatars/"+second {
		t.Errorf("image url = %v", dto.Image)
	}

	data, err := f.users.GetAvatar(ctx, second)
	if err != nil || string(data) != "two" {
		t.Errorf("GetAvatar = %q, %v", data, err)
	}
}

func TestUpdateAvatarWriteFailure(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, "ann@example.com", models.RoleUser)
	f.avatars.failSave = true

	_, err := f.users.UpdateAvatar(context.Background(), p, models.NewMemoryFile("me.png", []byte("x")))
	var imgErr *ImageProcessingError
	if !errors.As(err, &imgErr) || imgErr.Op != "write" {
		t.Fatalf("err = %v", err)
	}

	stored, _ := f.store.Users().FindByID(context.Background(), p.UserID)
	if stored.Image != nil {
		t.Errorf("image persisted despite failure: %v", *stored.Image)
	}
}

func TestUpdateAvatarKeepsSwapWhenOldFileStays(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.user(t, "ann@example.com", models.RoleUser)
	if _, err := f.users.UpdateAvatar(ctx, p, models.NewMemoryFile("me.png", []byte("one"))); err != nil {
		t.Fatal(err)
	}
	f.avatars.failDelete = true

	second, err := f.users.UpdateAvatar(ctx, p, models.NewMemoryFile("me.png", []byte("two")))
	if err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}
	stored, _ := f.store.Users().FindByID(ctx, p.UserID)
	if stored.Image == nil || *stored.Image != second {
		t.Errorf("image = %v, want %s", stored.Image, second)
	}
}
