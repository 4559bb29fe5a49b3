package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// GradeConfigRepository 학년 설정 문서 데이터 접근 인터페이스
type GradeConfigRepository interface {
	Create(ctx context.Context, cfg *model.GradeConfig) error
	GetByGrade(ctx context.Context, grade int) (*model.GradeConfig, error)
	Save(ctx context.Context, cfg *model.GradeConfig) error
}

type gradeConfigRepo struct {
	db *gorm.DB
}

// NewGradeConfigRepo GradeConfigRepository 인스턴스 생성
func NewGradeConfigRepo(db *gorm.DB) GradeConfigRepository {
	return &gradeConfigRepo{db: db}
}

func (r *gradeConfigRepo) Create(ctx context.Context, cfg *model.GradeConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *gradeConfigRepo) GetByGrade(ctx context.Context, grade int) (*model.GradeConfig, error) {
	var cfg model.GradeConfig
	err := r.db.WithContext(ctx).
		Where("grade = ?", grade).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *gradeConfigRepo) Save(ctx context.Context, cfg *model.GradeConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
