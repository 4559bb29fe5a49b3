package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/geunssam/jumprope-competition-manager-sub000/config"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/jwt"
)

// ── 테스트 보조 ──

func setupTestAuthService(t *testing.T) (AuthService, *mockUserRepo) {
	t.Helper()

	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:          userRepo,
		Event:         newMockEventRepo(),
		Class:         newMockClassRepo(),
		GradeConfig:   newMockGradeConfigRepo(),
		StudentRecord: newMockStudentRecordRepo(),
		AccessCode:    newMockAccessCodeRepo(),
	}

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret-key-for-auth-service"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTLDefault = 24 * time.Hour
	cfg.Auth.RefreshTokenTTLRemember = 30 * 24 * time.Hour

	jwtMgr := jwt.NewManager(&cfg.Auth)
	logger := zap.NewNop()
	// Redis 없는 구성: 블랙리스트 없이 동작해야 한다
	svc := NewAuthService(cfg, repo, jwtMgr, nil, logger)
	return svc, userRepo
}

func seedUser(t *testing.T, userRepo *mockUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("비밀번호 해시 실패: %v", err)
	}
	user := &model.User{
		UserID:       "user-1",
		Name:         "김교사",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "teacher",
	}
	userRepo.Create(context.Background(), user)
	return user
}

// ── Login 테스트 ──

func TestAuthService_Login(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	seedUser(t, userRepo, "teacher@school.kr", "password123")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.kr",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 성공해야 함: %v", err)
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Token 쌍이 발급되어야 함")
	}
	if resp.User.Email != "teacher@school.kr" || resp.User.Role != "teacher" {
		t.Errorf("사용자 정보 불일치: %+v", resp.User)
	}
	if resp.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("ExpiresIn = %d, 기대값 900", resp.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	seedUser(t, userRepo, "teacher@school.kr", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.kr",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("기대 ErrInvalidCredentials, 실제: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	// 계정 존재 여부를 구분하지 않고 같은 오류를 돌려준다
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@school.kr",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("기대 ErrInvalidCredentials, 실제: %v", err)
	}
}

// ── Refresh 테스트 ──

func TestAuthService_Refresh(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	seedUser(t, userRepo, "teacher@school.kr", "password123")

	logged, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.kr",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 실패: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), logged.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh 성공해야 함: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("새 Token 쌍이 발급되어야 함")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	seedUser(t, userRepo, "teacher@school.kr", "password123")

	logged, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "teacher@school.kr",
		Password: "password123",
	})

	// Access Token 으로는 재발급할 수 없다
	if _, err := svc.Refresh(context.Background(), logged.AccessToken); !errors.Is(err, jwt.ErrTokenInvalid) {
		t.Errorf("기대 ErrTokenInvalid, 실제: %v", err)
	}
}

// ── Me 테스트 ──

func TestAuthService_Me(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	user := seedUser(t, userRepo, "teacher@school.kr", "password123")

	resp, err := svc.Me(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("Me 성공해야 함: %v", err)
	}
	if resp.Name != "김교사" {
		t.Errorf("사용자 정보 불일치: %+v", resp)
	}

	if _, err := svc.Me(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("기대 ErrUserNotFound, 실제: %v", err)
	}
}
