package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// EventHandler 종목 템플릿 모듈 HTTP 처리기
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler EventHandler 생성
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// Create 종목 템플릿 생성
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.eventSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.Created(c, result)
}

// Get 종목 템플릿 조회
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	result, err := h.eventSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, result)
}

// List 종목 템플릿 목록
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	result, err := h.eventSvc.List(c.Request.Context())
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 종목 템플릿 수정
// PATCH /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 종목 템플릿 삭제
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.handleEventError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleEventError 종목 모듈 비즈니스 오류를 HTTP 응답으로 변환
func (h *EventHandler) handleEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 12001, "종목을 찾을 수 없습니다")
	case errors.Is(err, service.ErrEventTypeInvalid):
		response.BadRequest(c, 12002, "올바르지 않은 종목 방식입니다")
	default:
		response.InternalError(c)
	}
}
