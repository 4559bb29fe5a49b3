package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// EventRepository 종목 템플릿 데이터 접근 인터페이스
type EventRepository interface {
	Create(ctx context.Context, event *model.CompetitionEvent) error
	GetByID(ctx context.Context, id string) (*model.CompetitionEvent, error)
	List(ctx context.Context) ([]model.CompetitionEvent, error)
	ListByType(ctx context.Context, eventType model.EventType) ([]model.CompetitionEvent, error)
	Update(ctx context.Context, event *model.CompetitionEvent) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo EventRepository 인스턴스 생성
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.CompetitionEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.CompetitionEvent, error) {
	var event model.CompetitionEvent
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context) ([]model.CompetitionEvent, error) {
	var events []model.CompetitionEvent
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) ListByType(ctx context.Context, eventType model.EventType) ([]model.CompetitionEvent, error) {
	var events []model.CompetitionEvent
	err := r.db.WithContext(ctx).
		Where("type = ?", eventType).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.CompetitionEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.CompetitionEvent{}).
		Where("event_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
