package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 종목 모듈 비즈니스 오류 ──

var (
	ErrEventTypeInvalid = errors.New("올바르지 않은 종목 방식입니다")
)

// EventService 종목 템플릿 관리 비즈니스 인터페이스
// 채점 방식(Type)은 생성 후 변경할 수 없다 — 기존 결과의 해석이 바뀌기 때문
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.EventResponse, error)
	GetByID(ctx context.Context, eventID string) (*dto.EventResponse, error)
	List(ctx context.Context) ([]dto.EventResponse, error)
	Update(ctx context.Context, eventID string, req *dto.UpdateEventRequest, callerID string) (*dto.EventResponse, error)
	Delete(ctx context.Context, eventID string, callerID string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService EventService 인스턴스 생성
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 종목 템플릿 생성
func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.EventResponse, error) {
	eventType := model.EventType(req.Type)
	if !eventType.Valid() {
		return nil, ErrEventTypeInvalid
	}

	event := &model.CompetitionEvent{
		EventID:                uuid.NewString(),
		Name:                   req.Name,
		Type:                   eventType,
		DefaultTimeLimit:       req.DefaultTimeLimit,
		DefaultMaxParticipants: req.DefaultMaxParticipants,
		Description:            req.Description,
	}
	if event.DefaultTimeLimit == 0 {
		event.DefaultTimeLimit = 60
	}
	if event.DefaultMaxParticipants == 0 {
		event.DefaultMaxParticipants = 8
	}
	event.CreatedBy = &callerID
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("종목 생성 실패", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("종목 생성",
		zap.String("event_id", event.EventID), zap.String("name", event.Name), zap.String("type", string(event.Type)))
	resp := toEventResponse(event)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

// GetByID 종목 템플릿 조회
func (s *eventService) GetByID(ctx context.Context, eventID string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

// List 전체 종목 템플릿 (생성순 — 표시 순서의 기본값이 된다)
func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("종목 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, toEventResponse(&events[i]))
	}
	return resp, nil
}

// ────────────────────── Update ──────────────────────

// Update 종목 템플릿 수정. Type 은 받지 않는다
func (s *eventService) Update(ctx context.Context, eventID string, req *dto.UpdateEventRequest, callerID string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.DefaultTimeLimit != nil {
		event.DefaultTimeLimit = *req.DefaultTimeLimit
	}
	if req.DefaultMaxParticipants != nil {
		event.DefaultMaxParticipants = *req.DefaultMaxParticipants
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("종목 수정 실패", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 종목 템플릿 소프트 삭제
// 학급 결과는 연쇄 삭제하지 않는다 — 과거 결과의 매달린 참조는 수용한다
func (s *eventService) Delete(ctx context.Context, eventID string, callerID string) error {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return err
	}
	if err := s.repo.Event.Delete(ctx, eventID, callerID); err != nil {
		s.logger.Error("종목 삭제 실패", zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	s.logger.Info("종목 삭제", zap.String("event_id", eventID), zap.String("deleted_by", callerID))
	return nil
}

// ── 내부 헬퍼 ──

func (s *eventService) getEvent(ctx context.Context, eventID string) (*model.CompetitionEvent, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("종목 조회 실패", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func toEventResponse(e *model.CompetitionEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:                     e.EventID,
		Name:                   e.Name,
		Type:                   string(e.Type),
		DefaultTimeLimit:       e.DefaultTimeLimit,
		DefaultMaxParticipants: e.DefaultMaxParticipants,
		Description:            e.Description,
	}
}
