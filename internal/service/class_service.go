package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 학급 모듈 비즈니스 오류 ──

var (
	ErrClassNameRequired = errors.New("학급 이름이 필요합니다")
	ErrClassNoStudents   = errors.New("학생이 1명 이상 필요합니다")
	ErrStudentNameEmpty  = errors.New("이름이 빈 학생이 포함되어 있습니다")
)

// ClassService 학급 문서 관리 비즈니스 인터페이스
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest, callerID string) (*dto.ClassResponse, error)
	GetByID(ctx context.Context, classID string) (*dto.ClassResponse, error)
	List(ctx context.Context) ([]dto.ClassResponse, error)
	ListByGrade(ctx context.Context, grade int) ([]dto.ClassResponse, error)
	UpdateRoster(ctx context.Context, classID string, req *dto.UpdateRosterRequest, callerID string) (*dto.ClassResponse, error)
	Delete(ctx context.Context, classID string, callerID string) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService ClassService 인스턴스 생성
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 학급 생성. 명단의 학생 id 가 비어 있으면 서버에서 발급한다
func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest, callerID string) (*dto.ClassResponse, error) {
	if req.Grade < 1 || req.Grade > 6 {
		return nil, ErrGradeInvalid
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrClassNameRequired
	}
	students, err := buildRoster(req.Students, nil)
	if err != nil {
		return nil, err
	}

	class := &model.ClassTeam{
		Grade:    req.Grade,
		Name:     strings.TrimSpace(req.Name),
		Students: students,
		Results:  model.ResultMap{},
	}
	class.ClassID = uuid.NewString()
	class.CreatedBy = &callerID
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("학급 생성 실패", zap.Int("grade", req.Grade), zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("학급 생성",
		zap.String("class_id", class.ClassID), zap.Int("grade", class.Grade), zap.String("name", class.Name))
	return toClassResponse(class), nil
}

// ────────────────────── GetByID ──────────────────────

// GetByID 학급 문서 조회
func (s *classService) GetByID(ctx context.Context, classID string) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("학급 조회 실패", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}
	return toClassResponse(class), nil
}

// ────────────────────── List ──────────────────────

// List 전체 학급 목록 (학년, 이름순)
func (s *classService) List(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	return toClassResponses(classes), nil
}

// ListByGrade 학년별 학급 목록
func (s *classService) ListByGrade(ctx context.Context, grade int) ([]dto.ClassResponse, error) {
	if grade < 1 || grade > 6 {
		return nil, ErrGradeInvalid
	}
	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return nil, err
	}
	return toClassResponses(classes), nil
}

// ────────────────────── UpdateRoster ──────────────────────

// UpdateRoster 학급 명단 교체
// 기존 학생의 id 가 유지되면 접속 코드도 유지된다. 결과(Results)는 건드리지 않는다
func (s *classService) UpdateRoster(ctx context.Context, classID string, req *dto.UpdateRosterRequest, callerID string) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("학급 조회 실패", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}

	prevCodes := make(map[string]string, len(class.Students))
	for _, st := range class.Students {
		prevCodes[st.ID] = st.AccessCode
	}

	students, err := buildRoster(req.Students, prevCodes)
	if err != nil {
		return nil, err
	}

	class.Students = students
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("명단 저장 실패", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}
	return toClassResponse(class), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 학급 소프트 삭제
func (s *classService) Delete(ctx context.Context, classID string, callerID string) error {
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	if err := s.repo.Class.Delete(ctx, classID, callerID); err != nil {
		s.logger.Error("학급 삭제 실패", zap.String("class_id", classID), zap.Error(err))
		return err
	}
	s.logger.Info("학급 삭제", zap.String("class_id", classID), zap.String("deleted_by", callerID))
	return nil
}

// ── 내부 헬퍼 ──

// buildRoster 입력 명단을 모델로 변환한다
// prevCodes 가 주어지면 같은 id 학생의 접속 코드를 이어받는다
func buildRoster(inputs []dto.StudentInput, prevCodes map[string]string) (model.StudentList, error) {
	if len(inputs) == 0 {
		return nil, ErrClassNoStudents
	}
	students := make(model.StudentList, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, ErrStudentNameEmpty
		}
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		st := model.Student{ID: id, Name: name}
		if prevCodes != nil {
			st.AccessCode = prevCodes[id]
		}
		students = append(students, st)
	}
	return students, nil
}

func toClassResponses(classes []model.ClassTeam) []dto.ClassResponse {
	resp := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		resp = append(resp, *toClassResponse(&classes[i]))
	}
	return resp
}
