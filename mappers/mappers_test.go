package mappers

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"classifieds/models"
)

func strPtr(s string) *string { return &s }

func TestAdMapper_ToDto(t *testing.T) {
	m := NewAdMapper("/images/")

	t.Run("with image", func(t *testing.T) {
		dto := m.ToDto(&models.Ad{ID: 7, Title: "Bicycle", Price: 1500, AuthorID: 3, Image: strPtr("abc.png")})
		if dto.Pk != 7 || dto.Author != 3 || dto.Price != 1500 || dto.Title != "Bicycle" {
			t.Fatalf("unexpected projection: %+v", dto)
		}
		if dto.Image == nil || *dto.Image != "/images/abc.png" {
			t.Fatalf("expected /images/abc.png, got %v", dto.Image)
		}
	})

	t.Run("without image", func(t *testing.T) {
		dto := m.ToDto(&models.Ad{ID: 1})
		if dto.Image != nil {
			t.Fatalf("expected nil image, got %q", *dto.Image)
		}
		raw, _ := json.Marshal(dto)
		var decoded map[string]interface{}
		_ = json.Unmarshal(raw, &decoded)
		if v, ok := decoded["image"]; !ok || v != nil {
			t.Fatalf("expected image to serialize as null, got %s", raw)
		}
	})

	t.Run("empty image name", func(t *testing.T) {
		dto := m.ToDto(&models.Ad{ID: 1, Image: strPtr("")})
		if dto.Image != nil {
			t.Fatalf("expected nil image for empty name")
		}
	})
}

func TestAdMapper_ToExtendedDto(t *testing.T) {
	m := NewAdMapper("images")
	author := &models.User{ID: 2, FirstName: "Ivan", LastName: "Petrov", Email: "ivan@example.com", Phone: "+7 999 123-45-67"}
	dto := m.ToExtendedDto(&models.Ad{ID: 5, Title: "Lamp", Description: "Desk lamp, good", Price: 300, AuthorID: 2, Author: author, Image: strPtr("x.jpg")})

	if dto.AuthorFirstName != "Ivan" || dto.AuthorLastName != "Petrov" || dto.Email != "ivan@example.com" || dto.Phone != author.Phone {
		t.Fatalf("author fields not flattened: %+v", dto)
	}
	if dto.Image == nil || *dto.Image != "/images/x.jpg" {
		t.Fatalf("unexpected image url: %v", dto.Image)
	}

	noAuthor := m.ToExtendedDto(&models.Ad{ID: 6})
	if noAuthor.Email != "" {
		t.Fatalf("expected empty author fields, got %+v", noAuthor)
	}
}

func TestAdMapper_ToAdsDtoCount(t *testing.T) {
	m := NewAdMapper("/images")
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d ads", n), func(t *testing.T) {
			ads := make([]models.Ad, n)
			for i := range ads {
				ads[i] = models.Ad{ID: i + 1}
			}
			dto := m.ToAdsDto(ads)
			if dto.Count != len(dto.Results) || dto.Count != n {
				t.Fatalf("count %d, results %d, want %d", dto.Count, len(dto.Results), n)
			}
			if dto.Results == nil {
				t.Fatal("results must not be nil")
			}
		})
	}
}

func TestUserMapper_ToDto(t *testing.T) {
	m := NewUserMapper("/avatars")
	dto := m.ToDto(&models.User{ID: 1, Email: "a@b.c", Password: "hash", Role: models.RoleAdmin, Image: strPtr("me.webp")})
	if dto.Image == nil || *dto.Image != "/avatars/me.webp" {
		t.Fatalf("unexpected avatar url %v", dto.Image)
	}
	raw, _ := json.Marshal(dto)
	var decoded map[string]interface{}
	_ = json.Unmarshal(raw, &decoded)
	if _, ok := decoded["password"]; ok {
		t.Fatalf("password must never be serialized: %s", raw)
	}
	if decoded["role"] != "ADMIN" {
		t.Fatalf("expected role ADMIN, got %v", decoded["role"])
	}
}

func TestCommentMapper(t *testing.T) {
	m := NewCommentMapper("/avatars")
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 1, Text: "Is it still available?", AuthorID: 4, Author: &models.User{ID: 4, FirstName: "Olga", Image: strPtr("o.png")}, CreatedAt: created},
		{ID: 2, Text: "Yes, it is available", AuthorID: 5, Author: &models.User{ID: 5, FirstName: "Pavel"}, CreatedAt: created},
	}
	dto := m.ToCommentsDto(comments)
	if dto.Count != 2 {
		t.Fatalf("expected 2 comments, got %d", dto.Count)
	}
	first := dto.Results[0]
	if first.AuthorFirstName != "Olga" || first.AuthorImage == nil || *first.AuthorImage != "/avatars/o.png" {
		t.Fatalf("unexpected first comment: %+v", first)
	}
	if first.CreatedAt != created.UnixMilli() {
		t.Fatalf("expected createdAt in millis, got %d", first.CreatedAt)
	}
	if dto.Results[1].AuthorImage != nil {
		t.Fatal("expected nil author image")
	}
}
