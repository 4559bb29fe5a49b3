package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	pkgerrors "github.com/geunssam/jumprope-competition-manager-sub000/pkg/errors"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// LiveHandler 실시간 피드 모듈 HTTP 처리기
type LiveHandler struct {
	liveSvc service.LiveService
}

// NewLiveHandler LiveHandler 생성
func NewLiveHandler(liveSvc service.LiveService) *LiveHandler {
	return &LiveHandler{liveSvc: liveSvc}
}

// Stream (학년, 날짜) 스냅샷 SSE 스트림. ?date= 기본값은 오늘
// GET /api/v1/grades/:grade/live
func (h *LiveHandler) Stream(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	date := DateQuery(c, time.Now().Format("2006-01-02"))

	err := h.liveSvc.Stream(c.Request.Context(), c.Writer, grade, date)
	if err == nil {
		return // 정상 종료 (클라이언트 연결 종료 포함)
	}
	switch {
	case errors.Is(err, pkgerrors.ErrStreamUnsupported):
		response.Error(c, http.StatusNotImplemented, 18001, "이 연결은 실시간 스트리밍을 지원하지 않습니다")
	case errors.Is(err, service.ErrGradeInvalid):
		response.BadRequest(c, 13002, "학년은 1~6 사이여야 합니다")
	default:
		// 스트림 도중의 오류는 이미 본문이 나간 상태일 수 있으므로 응답을 덧쓰지 않는다
		if !c.Writer.Written() {
			response.InternalError(c)
		}
	}
}

// Snapshot 단발 스냅샷 조회 (SSE 를 못 쓰는 클라이언트의 폴링용)
// GET /api/v1/grades/:grade/snapshot
func (h *LiveHandler) Snapshot(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	date := DateQuery(c, time.Now().Format("2006-01-02"))

	result, err := h.liveSvc.Snapshot(c.Request.Context(), grade, date)
	if err != nil {
		if errors.Is(err, service.ErrGradeInvalid) {
			response.BadRequest(c, 13002, "학년은 1~6 사이여야 합니다")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
