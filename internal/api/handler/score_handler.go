package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// ScoreHandler 점수/팀 모듈 HTTP 처리기
// 점수 입력과 팀 구성은 같은 학급 결과 문서를 건드리므로 한 처리기로 묶는다
type ScoreHandler struct {
	scoreSvc service.ScoreService
	teamSvc  service.TeamService
}

// NewScoreHandler ScoreHandler 생성
func NewScoreHandler(scoreSvc service.ScoreService, teamSvc service.TeamService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc, teamSvc: teamSvc}
}

// SetIndividualScore 개인전 점수 입력
// PUT /api/v1/classes/:id/results/:eventId/scores
func (h *ScoreHandler) SetIndividualScore(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetIndividualScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.scoreSvc.SetIndividualScore(c.Request.Context(), c.Param("id"), c.Param("eventId"), &req, userID)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.OK(c, result)
}

// SetTeamScore 팀 점수 입력
// PUT /api/v1/classes/:id/results/:eventId/team-scores
func (h *ScoreHandler) SetTeamScore(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetTeamScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.scoreSvc.SetTeamScore(c.Request.Context(), c.Param("id"), c.Param("eventId"), &req, userID)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.OK(c, result)
}

// SetParticipants 개인전 참가자 지정
// PUT /api/v1/classes/:id/results/:eventId/participants
func (h *ScoreHandler) SetParticipants(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.scoreSvc.SetParticipants(c.Request.Context(), c.Param("id"), c.Param("eventId"), &req, userID)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.OK(c, result)
}

// CreateTeam 팀 생성
// POST /api/v1/classes/:id/results/:eventId/teams
func (h *ScoreHandler) CreateTeam(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 값 검증에 실패했습니다")
		return
	}

	result, err := h.teamSvc.CreateTeam(c.Request.Context(), c.Param("id"), c.Param("eventId"), &req, userID)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteTeam 팀 삭제
// DELETE /api/v1/classes/:id/results/:eventId/teams/:teamId
func (h *ScoreHandler) DeleteTeam(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.teamSvc.DeleteTeam(c.Request.Context(), c.Param("id"), c.Param("eventId"), c.Param("teamId"), userID)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.OK(c, result)
}

// ResetResults 학급-종목 결과 초기화 (파괴적 작업)
// DELETE /api/v1/classes/:id/results/:eventId
func (h *ScoreHandler) ResetResults(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scoreSvc.ResetEventResults(c.Request.Context(), c.Param("id"), c.Param("eventId"), userID); err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.OK(c, nil)
}

// Standings 학년 순위 조회. ?date= 기본값은 오늘
// GET /api/v1/grades/:grade/standings
func (h *ScoreHandler) Standings(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	date := DateQuery(c, time.Now().Format("2006-01-02"))

	result, err := h.scoreSvc.Standings(c.Request.Context(), grade, date)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}
	response.OK(c, result)
}

// handleScoreError 점수/팀 모듈 비즈니스 오류를 HTTP 응답으로 변환
func (h *ScoreHandler) handleScoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 13001, "학급을 찾을 수 없습니다")
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 12001, "종목을 찾을 수 없습니다")
	case errors.Is(err, service.ErrEventNotTeamType):
		response.BadRequest(c, 14001, "팀을 만들 수 없는 종목입니다")
	case errors.Is(err, service.ErrPairSizeInvalid):
		response.BadRequest(c, 14002, "2인 1조 종목의 팀은 정확히 2명이어야 합니다")
	case errors.Is(err, service.ErrTeamSizeInvalid):
		response.BadRequest(c, 14003, "팀은 1명 이상이어야 합니다")
	case errors.Is(err, service.ErrMemberNotInClass):
		response.BadRequest(c, 14004, "학급 명단에 없는 학생이 포함되어 있습니다")
	default:
		response.InternalError(c)
	}
}
