package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"panduan-karier/internal/config"
	"panduan-karier/internal/pkg/jwt"
)

func testService(t *testing.T, email, password string) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	admin := config.AdminConfig{Email: email, PasswordHash: string(hash)}
	tokens := jwt.NewHMACService("test-secret", time.Minute)
	return NewService(admin, tokens)
}

func TestLoginReturnsToken(t *testing.T) {
	svc := testService(t, "admin@panduankarier.id", "rahasia123")

	token, err := svc.Login(context.Background(), LoginInput{
		Email:    "Admin@PanduanKarier.id ",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := jwt.NewHMACService("test-secret", time.Minute).ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Email != "admin@panduankarier.id" {
		t.Fatalf("claims email = %q, want admin email", claims.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := testService(t, "admin@panduankarier.id", "rahasia123")

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@panduankarier.id", "salah"},
		{"wrong email", "orang@lain.id", "rahasia123"},
		{"empty email", "", "rahasia123"},
		{"empty password", "admin@panduankarier.id", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), LoginInput{Email: tc.email, Password: tc.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginWithoutAdminConfigured(t *testing.T) {
	svc := NewService(config.AdminConfig{}, jwt.NewHMACService("test-secret", time.Minute))

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "x"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
