package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// ClassRepository 학급 문서 데이터 접근 인터페이스
// Save 는 항상 문서 전체를 덮어쓴다 (필드 단위 병합 없음, 마지막 저장 우선)
type ClassRepository interface {
	Create(ctx context.Context, class *model.ClassTeam) error
	GetByID(ctx context.Context, id string) (*model.ClassTeam, error)
	ListByGrade(ctx context.Context, grade int) ([]model.ClassTeam, error)
	List(ctx context.Context) ([]model.ClassTeam, error)
	Save(ctx context.Context, class *model.ClassTeam) error
	Delete(ctx context.Context, id string, deletedBy string) error
	MaxUpdatedAt(ctx context.Context, grade int) (time.Time, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo ClassRepository 인스턴스 생성
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.ClassTeam) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.ClassTeam, error) {
	var class model.ClassTeam
	err := r.db.WithContext(ctx).
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) ListByGrade(ctx context.Context, grade int) ([]model.ClassTeam, error) {
	var classes []model.ClassTeam
	err := r.db.WithContext(ctx).
		Where("grade = ?", grade).
		Order("name ASC").
		Find(&classes).Error
	return classes, err
}

func (r *classRepo) List(ctx context.Context) ([]model.ClassTeam, error) {
	var classes []model.ClassTeam
	err := r.db.WithContext(ctx).
		Order("grade ASC, name ASC").
		Find(&classes).Error
	return classes, err
}

func (r *classRepo) Save(ctx context.Context, class *model.ClassTeam) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.ClassTeam{}).
		Where("class_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

// MaxUpdatedAt 학년 내 학급 문서의 최근 수정 시각 (실시간 피드의 변경 감지용)
func (r *classRepo) MaxUpdatedAt(ctx context.Context, grade int) (time.Time, error) {
	var ts *time.Time
	err := r.db.WithContext(ctx).
		Model(&model.ClassTeam{}).
		Where("grade = ?", grade).
		Select("MAX(updated_at)").
		Scan(&ts).Error
	if err != nil || ts == nil {
		return time.Time{}, err
	}
	return *ts, nil
}
