package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 모든 Repository 의 집약 진입점
type Repository struct {
	db *gorm.DB

	User          UserRepository
	Event         EventRepository
	Class         ClassRepository
	GradeConfig   GradeConfigRepository
	StudentRecord StudentRecordRepository
	AccessCode    AccessCodeRepository
}

// NewRepository Repository 집약 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:            db,
		User:          NewUserRepo(db),
		Event:         NewEventRepo(db),
		Class:         NewClassRepo(db),
		GradeConfig:   NewGradeConfigRepo(db),
		StudentRecord: NewStudentRecordRepo(db),
		AccessCode:    NewAccessCodeRepo(db),
	}
}

// BeginTx 트랜잭션 시작
// DB 없는 구성(단위 테스트의 mock Repository)에서는 nil 을 반환하고
// 호출 측은 tx == nil 이면 트랜잭션 없이 진행한다
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 주어진 트랜잭션 위에서 동작하는 Repository 집약을 만든다
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
