package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// ClassHandler 학급 모듈 HTTP 처리기
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler ClassHandler 생성
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Create 학급 생성
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.classSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.Created(c, result)
}

// Get 학급 조회
// GET /api/v1/classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	result, err := h.classSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, result)
}

// List 학급 목록. ?grade= 로 학년 필터 가능
// GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	if gradeStr := c.Query("grade"); gradeStr != "" {
		grade, err := strconv.Atoi(gradeStr)
		if err != nil {
			response.BadRequest(c, 10001, "학년은 정수여야 합니다")
			return
		}
		result, err := h.classSvc.ListByGrade(c.Request.Context(), grade)
		if err != nil {
			h.handleClassError(c, err)
			return
		}
		response.OK(c, result)
		return
	}

	result, err := h.classSvc.List(c.Request.Context())
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, result)
}

// UpdateRoster 학급 명단 교체
// PUT /api/v1/classes/:id/roster
func (h *ClassHandler) UpdateRoster(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.classSvc.UpdateRoster(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 학급 삭제
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.classSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleClassError 학급 모듈 비즈니스 오류를 HTTP 응답으로 변환
func (h *ClassHandler) handleClassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 13001, "학급을 찾을 수 없습니다")
	case errors.Is(err, service.ErrGradeInvalid):
		response.BadRequest(c, 13002, "학년은 1~6 사이여야 합니다")
	case errors.Is(err, service.ErrClassNameRequired):
		response.BadRequest(c, 13003, "학급 이름이 필요합니다")
	case errors.Is(err, service.ErrClassNoStudents):
		response.BadRequest(c, 13004, "학생이 1명 이상 필요합니다")
	case errors.Is(err, service.ErrStudentNameEmpty):
		response.BadRequest(c, 13005, "이름이 빈 학생이 포함되어 있습니다")
	default:
		response.InternalError(c)
	}
}
