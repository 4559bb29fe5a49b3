package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/jwt"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// AuthHandler 인증 모듈 HTTP 처리기
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler 생성
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 교사 로그인
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "이메일 또는 비밀번호가 올바르지 않습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 로그아웃 (현재 Token 블랙리스트 등록)
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Refresh Token 갱신
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenInvalid):
			response.Unauthorized(c, 11002, "Token 이 유효하지 않거나 만료되었습니다")
		case errors.Is(err, service.ErrUserNotFound):
			response.Unauthorized(c, 11002, "사용자를 찾을 수 없습니다")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// Me 현재 로그인 사용자 조회
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11003, "사용자를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
