package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/service"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/response"
)

// ExportHandler 내보내기 모듈 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportStandings 학년 순위표 Excel 다운로드. ?date= 기본값은 오늘
// GET /api/v1/grades/:grade/standings/export
func (h *ExportHandler) ExportStandings(c *gin.Context) {
	grade, ok := MustGetGrade(c)
	if !ok {
		return
	}
	date := DateQuery(c, time.Now().Format("2006-01-02"))

	buf, filename, err := h.exportSvc.ExportStandings(c.Request.Context(), grade, date)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 다운로드 응답 헤더
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGradeInvalid):
		response.BadRequest(c, 13002, "학년은 1~6 사이여야 합니다")
	case errors.Is(err, service.ErrExportNoClasses):
		response.NotFound(c, 17001, "해당 학년에 학급이 없습니다")
	case errors.Is(err, service.ErrExportNoEvents):
		response.BadRequest(c, 17002, "해당 날짜에 진행 중인 종목이 없습니다")
	default:
		response.InternalError(c)
	}
}
