package services

import (
	"classifieds/models"
	"classifieds/repositories"
	"context"
	"errors"
	"fmt"
)

// CanModify reports whether user may change a resource owned by authorID.
func CanModify(user *models.User, authorID int) bool {
	if user == nil {
		return false
	}
	return user.Role.IsAdmin() || user.ID == authorID
}

// currentUser resolves the caller from the principal's email on every call.
func currentUser(ctx context.Context, users UserRepository, principal models.Principal) (*models.User, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	user, err := users.FindByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	return user, nil
}

func translateNotFound(err error, what string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}
