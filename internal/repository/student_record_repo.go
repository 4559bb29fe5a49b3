package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// StudentRecordRepository 학생 기록(추가 전용) 데이터 접근 인터페이스
type StudentRecordRepository interface {
	Create(ctx context.Context, record *model.StudentRecord) error
	BatchCreate(ctx context.Context, records []model.StudentRecord) error
	ListByStudent(ctx context.Context, studentID string) ([]model.StudentRecord, error)
	ListByClassEvent(ctx context.Context, classID, eventID string) ([]model.StudentRecord, error)
	DeleteByClassEvent(ctx context.Context, classID, eventID string) error
}

type studentRecordRepo struct {
	db *gorm.DB
}

// NewStudentRecordRepo StudentRecordRepository 인스턴스 생성
func NewStudentRecordRepo(db *gorm.DB) StudentRecordRepository {
	return &studentRecordRepo{db: db}
}

func (r *studentRecordRepo) Create(ctx context.Context, record *model.StudentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *studentRecordRepo) BatchCreate(ctx context.Context, records []model.StudentRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *studentRecordRepo) ListByStudent(ctx context.Context, studentID string) ([]model.StudentRecord, error) {
	var records []model.StudentRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date ASC, created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *studentRecordRepo) ListByClassEvent(ctx context.Context, classID, eventID string) ([]model.StudentRecord, error) {
	var records []model.StudentRecord
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND event_id = ?", classID, eventID).
		Order("date ASC, created_at ASC").
		Find(&records).Error
	return records, err
}

// DeleteByClassEvent 한 학급-종목의 기록 초기화 (명시적 확인을 거친 파괴적 작업 전용)
func (r *studentRecordRepo) DeleteByClassEvent(ctx context.Context, classID, eventID string) error {
	return r.db.WithContext(ctx).
		Where("class_id = ? AND event_id = ?", classID, eventID).
		Delete(&model.StudentRecord{}).Error
}
