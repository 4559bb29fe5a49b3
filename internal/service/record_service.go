package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// RecordService 학생 성장 기록 비즈니스 인터페이스
// 대회 기록은 점수 저장 경로에서 자동으로 쌓이고, 여기서는 조회와 연습 기록만 다룬다
type RecordService interface {
	ListByStudent(ctx context.Context, studentID string) ([]dto.RecordResponse, error)
	CreatePractice(ctx context.Context, req *dto.CreatePracticeRecordRequest) (*dto.RecordResponse, error)
}

type recordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecordService RecordService 인스턴스 생성
func NewRecordService(repo *repository.Repository, logger *zap.Logger) RecordService {
	return &recordService{repo: repo, logger: logger}
}

// ────────────────────── ListByStudent ──────────────────────

// ListByStudent 학생의 기록을 날짜 오름차순으로 조회한다 (성장 그래프용)
func (s *recordService) ListByStudent(ctx context.Context, studentID string) ([]dto.RecordResponse, error) {
	records, err := s.repo.StudentRecord.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("학생 기록 조회 실패", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		resp = append(resp, toRecordResponse(&records[i]))
	}
	return resp, nil
}

// ────────────────────── CreatePractice ──────────────────────

// CreatePractice 연습 기록 추가. 대회 집계에는 영향을 주지 않는다
func (s *recordService) CreatePractice(ctx context.Context, req *dto.CreatePracticeRecordRequest) (*dto.RecordResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		day = time.Now()
	}

	record := &model.StudentRecord{
		StudentID: req.StudentID,
		EventID:   req.EventID,
		ClassID:   req.ClassID,
		Grade:     req.Grade,
		Score:     ParseScore(req.Score),
		Date:      datatypes.Date(day),
		Mode:      model.RecordModePractice,
	}
	if err := s.repo.StudentRecord.Create(ctx, record); err != nil {
		s.logger.Error("연습 기록 저장 실패",
			zap.String("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}

	resp := toRecordResponse(record)
	return &resp, nil
}
