package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/geunssam/jumprope-competition-manager-sub000/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-tests",
		AccessTokenTTL:          30 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 168 * time.Hour,
	})
}

func TestManager_GenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-001", "teacher")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}
	if claims.UserID != "user-001" {
		t.Errorf("기대 UserID=user-001, 실제=%s", claims.UserID)
	}
	if claims.Role != "teacher" {
		t.Errorf("기대 Role=teacher, 실제=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("기대 TokenType=access, 실제=%s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("JTI 가 비어 있으면 안 됨")
	}
}

func TestManager_GenerateRefreshToken_RememberMe(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-001", "admin", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken 실패: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 실패: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("기대 TokenType=refresh, 실제=%s", claims.TokenType)
	}
	if !claims.RememberMe {
		t.Error("RememberMe 가 true 여야 함")
	}

	// remember_me TTL 이 기본 TTL 보다 길어야 한다
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 100*time.Hour {
		t.Errorf("remember_me refresh token 유효 기간이 너무 짧음: %v", remaining)
	}
}

func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-key-entirely",
		AccessTokenTTL: 30 * time.Minute,
	})

	token, err := m.GenerateAccessToken("user-001", "teacher")
	if err != nil {
		t.Fatalf("GenerateAccessToken 실패: %v", err)
	}

	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("기대 ErrTokenInvalid, 실제: %v", err)
	}
}

func TestManager_ParseToken_Garbage(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("기대 ErrTokenInvalid, 실제: %v", err)
	}
}
