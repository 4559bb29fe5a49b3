package handler

import "github.com/geunssam/jumprope-competition-manager-sub000/internal/service"

// Handler 모든 Handler 의 집약 진입점
type Handler struct {
	Auth        *AuthHandler
	Event       *EventHandler
	Class       *ClassHandler
	Score       *ScoreHandler
	GradeConfig *GradeConfigHandler
	Record      *RecordHandler
	Export      *ExportHandler
	Live        *LiveHandler
}

// NewHandler Handler 집약 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Event:       NewEventHandler(svc.Event),
		Class:       NewClassHandler(svc.Class),
		Score:       NewScoreHandler(svc.Score, svc.Team),
		GradeConfig: NewGradeConfigHandler(svc.GradeConfig, svc.AccessCode),
		Record:      NewRecordHandler(svc.Record, svc.AccessCode),
		Export:      NewExportHandler(svc.Export),
		Live:        NewLiveHandler(svc.Live),
	}
}
