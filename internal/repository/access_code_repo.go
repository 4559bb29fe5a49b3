package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// AccessCodeRepository 접속 코드 투영 데이터 접근 인터페이스
type AccessCodeRepository interface {
	Create(ctx context.Context, code *model.AccessCode) error
	GetByCode(ctx context.Context, code string) (*model.AccessCode, error)
	Exists(ctx context.Context, code string) (bool, error)
	ListCodes(ctx context.Context) ([]string, error)
}

type accessCodeRepo struct {
	db *gorm.DB
}

// NewAccessCodeRepo AccessCodeRepository 인스턴스 생성
func NewAccessCodeRepo(db *gorm.DB) AccessCodeRepository {
	return &accessCodeRepo{db: db}
}

func (r *accessCodeRepo) Create(ctx context.Context, code *model.AccessCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *accessCodeRepo) GetByCode(ctx context.Context, code string) (*model.AccessCode, error) {
	var ac model.AccessCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&ac).Error
	if err != nil {
		return nil, err
	}
	return &ac, nil
}

func (r *accessCodeRepo) Exists(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.AccessCode{}).
		Where("code = ?", code).
		Count(&n).Error
	return n > 0, err
}

// ListCodes 발급된 모든 코드 (충돌 검사용)
func (r *accessCodeRepo) ListCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.AccessCode{}).
		Pluck("code", &codes).Error
	return codes, err
}
