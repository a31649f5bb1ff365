package services

import (
	"classifieds/mappers"
	"classifieds/models"
	"classifieds/repositories"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type UserService struct {
	users    UserRepository
	avatars  ImageStore
	mapper   *mappers.UserMapper
	encoder  PasswordEncoder
	notifier PasswordChangeNotifier
}

// NewUserService wires profile management. notifier may be nil.
func NewUserService(users UserRepository, avatars ImageStore, mapper *mappers.UserMapper, encoder PasswordEncoder, notifier PasswordChangeNotifier) *UserService {
	return &UserService{
		users:    users,
		avatars:  avatars,
		mapper:   mapper,
		encoder:  encoder,
		notifier: notifier,
	}
}

func (s *UserService) GetAuthenticatedUser(ctx context.Context, principal models.Principal) (*models.UserDto, error) {
	user, err := currentUser(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}
	dto := s.mapper.ToDto(user)
	return &dto, nil
}

// UpdateUser changes first name, last name and phone. It returns input as
// received rather than the stored user.
func (s *UserService) UpdateUser(ctx context.Context, principal models.Principal, input models.UpdateUserRequest) (*models.UpdateUserRequest, error) {
	user, err := currentUser(ctx, s.users, principal)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, translateNotFound(err, "user")
	}
	return &input, nil
}

// UpdatePassword reports false without writing when currentPassword does not
// match the stored hash.
func (s *UserService) UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, ErrUnauthenticated
		}
		return false, fmt.Errorf("failed to load user: %w", err)
	}

	if !s.encoder.Matches(currentPassword, user.Password) {
		return false, nil
	}

	hashed, err := s.encoder.Encode(newPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return false, translateNotFound(err, "user")
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPasswordChanged(ctx, user); err != nil {
			slog.WarnContext(ctx, "password change notification failed", "user_id", user.ID, "error", err)
		}
	}
	return true, nil
}

func (s *UserService) UpdateAvatar(ctx context.Context, principal models.Principal, file models.UploadedFile) (string, error) {
	user, err := currentUser(ctx, s.users, principal)
	if err != nil {
		return "", err
	}
	return replaceImage(ctx, s.avatars, file, user.Image, func(name string) error {
		if err := s.users.UpdateImage(ctx, user.ID, name); err != nil {
			return translateNotFound(err, "user")
		}
		return nil
	})
}

func (s *UserService) GetAvatar(ctx context.Context, fileName string) ([]byte, error) {
	data, err := s.avatars.Read(ctx, fileName)
	if err != nil {
		return nil, imageError("read", fileName, err)
	}
	return data, nil
}
