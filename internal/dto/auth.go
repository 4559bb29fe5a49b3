package dto

// ── 인증 모듈 DTO ──

// LoginRequest 로그인 요청
type LoginRequest struct {
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=8"`
	RememberMe bool   `json:"remember_me"`
}

// TokenResponse Token 쌍 응답
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 유효 기간(초)
	User         UserResponse `json:"user"`
}

// UserResponse 사용자 정보 응답 (민감 정보 제외)
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
