package services

import (
	"classifieds/models"
	"classifieds/repositories"
	"context"
	"errors"
	"fmt"
	"strings"
)

type AuthService struct {
	users   UserRepository
	encoder PasswordEncoder
	tokens  TokenIssuer

	allowAdmin bool
}

// NewAuthService wires registration and login. allowAdmin controls whether
// self-registration may request the ADMIN role.
func NewAuthService(users UserRepository, encoder PasswordEncoder, tokens TokenIssuer, allowAdmin bool) *AuthService {
	return &AuthService{users: users, encoder: encoder, tokens: tokens, allowAdmin: allowAdmin}
}

// Register reports false when the email is already taken, the role is
// not USER or ADMIN, or ADMIN is requested while admin signup is off.
// An empty role registers a USER.
func (s *AuthService) Register(ctx context.Context, input models.RegisterRequest) (bool, error) {
	role := models.RoleUser
	if strings.TrimSpace(input.Role) != "" {
		parsed, err := models.ParseRole(input.Role)
		if err != nil {
			return false, nil
		}
		role = parsed
	}
	if role.IsAdmin() && !s.allowAdmin {
		return false, nil
	}

	exists, err := s.users.ExistsByEmail(ctx, input.Username)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return false, nil
	}

	hashed, err := s.encoder.Encode(input.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     input.Username,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

func (s *AuthService) Login(ctx context.Context, input models.LoginRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if !s.encoder.Matches(input.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
