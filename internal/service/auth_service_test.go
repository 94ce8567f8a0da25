package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"pcm-swm/backend/config"
	"pcm-swm/backend/internal/dto"
	"pcm-swm/backend/internal/repository"
	"pcm-swm/backend/pkg/jwt"
)

func newAuthServiceForTest(repo *repository.Repository) AuthService {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret-at-least-16-chars"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTLDefault = 168 * time.Hour
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	repo, _, _ := newMockRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Maria Planner",
		Email:    "maria@example.com",
		Password: "s3nh4-segura",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != "planner" {
		t.Errorf("role = %q, new accounts default to planner", user.Role)
	}

	tokens, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "s3nh4-segura",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both tokens")
	}
	if tokens.User.Name != "Maria Planner" {
		t.Errorf("user name = %q", tokens.User.Name)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo, _, _ := newMockRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "s3nh4-segura"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, _, _ := newMockRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	svc.Register(ctx, &dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "s3nh4-segura"})

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "maria@example.com", Password: "errada"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "ninguem@example.com", Password: "s3nh4-segura"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo, _, _ := newMockRepository()
	svc := newAuthServiceForTest(repo)
	ctx := context.Background()

	svc.Register(ctx, &dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "s3nh4-segura"})
	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "maria@example.com", Password: "s3nh4-segura"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken}); !errors.Is(err, ErrNotRefreshToken) {
		t.Errorf("err = %v, want ErrNotRefreshToken", err)
	}

	rotated, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh with real refresh token: %v", err)
	}
	if rotated.AccessToken == "" {
		t.Error("expected a new access token")
	}
}
