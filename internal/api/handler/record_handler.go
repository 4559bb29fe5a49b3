package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// RecordHandler 성장 기록 모듈 HTTP 처리기
type RecordHandler struct {
	recordSvc service.RecordService
	codeSvc   service.AccessCodeService
}

// NewRecordHandler RecordHandler 생성
func NewRecordHandler(recordSvc service.RecordService, codeSvc service.AccessCodeService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc, codeSvc: codeSvc}
}

// ListByStudent 학생 기록 조회 (교사용)
// GET /api/v1/records/students/:studentId
func (h *RecordHandler) ListByStudent(c *gin.Context) {
	result, err := h.recordSvc.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreatePractice 연습 기록 추가
// POST /api/v1/records/practice
func (h *RecordHandler) CreatePractice(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	var req dto.CreatePracticeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.recordSvc.CreatePractice(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Lookup 접속 코드 공개 조회 (인증 없음)
// GET /api/v1/lookup/:code
func (h *RecordHandler) Lookup(c *gin.Context) {
	result, err := h.codeSvc.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrCodeNotFound) {
			response.NotFound(c, 16001, "접속 코드를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
