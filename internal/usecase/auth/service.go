package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"panduan-karier/internal/config"
	"panduan-karier/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin auth not configured")
	ErrInternal           = errors.New("internal error")
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (string, error)
}

// Service authenticates the single admin account configured via the
// environment. There is no user store; credentials live in config.
type Service struct {
	admin  config.AdminConfig
	tokens jwt.Service
}

func NewService(admin config.AdminConfig, tokens jwt.Service) *Service {
	return &Service{admin: admin, tokens: tokens}
}

func (s *Service) Login(_ context.Context, in LoginInput) (string, error) {
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		return "", ErrNotConfigured
	}

	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", ErrInvalidCredentials
	}
	if email != normalizeEmail(s.admin.Email) {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(email)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
