package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// GradeConfigHandler 학년 설정 모듈 HTTP 처리기
type GradeConfigHandler struct {
	configSvc service.GradeConfigService
	codeSvc   service.AccessCodeService
}

// NewGradeConfigHandler GradeConfigHandler 생성
func NewGradeConfigHandler(configSvc service.GradeConfigService, codeSvc service.AccessCodeService) *GradeConfigHandler {
	return &GradeConfigHandler{configSvc: configSvc, codeSvc: codeSvc}
}

// GetEffective (학년, 날짜) 유효 설정 조회. ?date= 기본값은 오늘
// GET /api/v1/grades/:grade/config
func (h *GradeConfigHandler) GetEffective(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	date := DateQuery(c, time.Now().Format("2006-01-02"))

	result, err := h.configSvc.GetEffective(c.Request.Context(), grade, date)
	if err != nil {
		h.handleConfigError(c, err)
		return
	}
	response.OK(c, result)
}

// SelectEvent 종목 선택/해제
// PUT /api/v1/grades/:grade/events/:eventId/selection
func (h *GradeConfigHandler) SelectEvent(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SelectEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	if err := h.configSvc.SelectEvent(c.Request.Context(), grade, c.Param("eventId"), &req, userID); err != nil {
		h.handleConfigError(c, err)
		return
	}
	response.OK(c, nil)
}

// CopyEvent 종목 복사 (같은 날 재시행)
// POST /api/v1/grades/:grade/events/:eventId/copy
func (h *GradeConfigHandler) CopyEvent(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CopyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.configSvc.CopyEvent(c.Request.Context(), grade, c.Param("eventId"), &req, userID)
	if err != nil {
		h.handleConfigError(c, err)
		return
	}
	response.Created(c, result)
}

// Reorder 종목 표시 순서 변경 (두 위치 교환)
// PUT /api/v1/grades/:grade/order
func (h *GradeConfigHandler) Reorder(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	order, err := h.configSvc.Reorder(c.Request.Context(), grade, &req)
	if err != nil {
		h.handleConfigError(c, err)
		return
	}
	response.OK(c, gin.H{"active_order": order})
}

// EnsureCodes 학년 내 전체 학생 접속 코드 일괄 발급
// POST /api/v1/grades/:grade/access-codes
func (h *GradeConfigHandler) EnsureCodes(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	granted, err := h.codeSvc.EnsureCodes(c.Request.Context(), grade, userID)
	if err != nil {
		h.handleConfigError(c, err)
		return
	}
	response.OK(c, gin.H{"granted": granted})
}

// handleConfigError 학년 설정 모듈 비즈니스 오류를 HTTP 응답으로 변환
func (h *GradeConfigHandler) handleConfigError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGradeInvalid):
		response.BadRequest(c, 13002, "학년은 1~6 사이여야 합니다")
	case errors.Is(err, service.ErrGradeHasNoClasses):
		response.Conflict(c, 15001, "해당 학년에 등록된 학급이 없습니다")
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 12001, "종목을 찾을 수 없습니다")
	default:
		response.InternalError(c)
	}
}
