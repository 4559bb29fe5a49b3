package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/jwt"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// MustGetUserID Gin 컨텍스트에서 user_id 를 안전하게 꺼낸다.
// JWT 미들웨어가 주입하지 않았으면 401 응답을 쓰고 false 를 반환한다.
// 호출 측은 ok=false 면 바로 return 해야 한다.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// MustGetClaims Gin 컨텍스트에서 JWT 클레임을 안전하게 꺼낸다.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return nil, false
	}
	return claims, true
}

// MustGetGrade 경로 파라미터 :grade 를 1~6 정수로 파싱한다.
// 실패하면 400 응답을 쓰고 false 를 반환한다.
func MustGetGrade(c *gin.Context) (int, bool) {
	grade, err := strconv.Atoi(c.Param("grade"))
	if err != nil || grade < 1 || grade > 6 {
		response.BadRequest(c, 10001, "학년은 1~6 사이여야 합니다")
		return 0, false
	}
	return grade, true
}

// DateQuery 쿼리 파라미터 date 를 읽는다. 없으면 기본값을 쓴다
func DateQuery(c *gin.Context, fallback string) string {
	if date := c.Query("date"); date != "" {
		return date
	}
	return fallback
}
