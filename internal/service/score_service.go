package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 점수 모듈 비즈니스 오류 ──

var (
	ErrClassNotFound = errors.New("학급을 찾을 수 없습니다")
)

// ScoreService 점수 입력/집계/순위 비즈니스 인터페이스
// 모든 변경은 학급 문서 전체를 다시 계산해 통째로 저장한다 (필드 병합 없음)
type ScoreService interface {
	SetIndividualScore(ctx context.Context, classID, eventID string, req *dto.SetIndividualScoreRequest, callerID string) (*dto.ClassResponse, error)
	SetTeamScore(ctx context.Context, classID, eventID string, req *dto.SetTeamScoreRequest, callerID string) (*dto.ClassResponse, error)
	SetParticipants(ctx context.Context, classID, eventID string, req *dto.SetParticipantsRequest, callerID string) (*dto.ClassResponse, error)
	Standings(ctx context.Context, grade int, date string) ([]dto.StandingResponse, error)
	ResetEventResults(ctx context.Context, classID, eventID string, callerID string) error
}

type scoreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScoreService ScoreService 인스턴스 생성
func NewScoreService(repo *repository.Repository, logger *zap.Logger) ScoreService {
	return &scoreService{repo: repo, logger: logger}
}

// ────────────────────── SetIndividualScore ──────────────────────

// SetIndividualScore 개인전 점수 입력
// 참가자 목록 밖 학생의 점수도 저장은 하되 합계에는 넣지 않는다
// (참가 여부와 점수 입력은 독립 — 미리 입력해 두고 참가만 전환할 수 있다)
func (s *scoreService) SetIndividualScore(ctx context.Context, classID, eventID string, req *dto.SetIndividualScoreRequest, callerID string) (*dto.ClassResponse, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	score := ParseScore(req.Score)

	res := class.Results[eventID]
	if res.StudentScores == nil {
		res.StudentScores = make(map[string]int)
	}
	res.StudentScores[req.StudentID] = score
	if req.Date != "" {
		res.Date = req.Date
	}
	recalcIndividual(&res)

	if class.Results == nil {
		class.Results = model.ResultMap{}
	}
	class.Results[eventID] = res
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("점수 저장 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	s.appendRecord(ctx, class, eventID, model.StudentRecord{
		StudentID: req.StudentID,
		Score:     score,
		Mode:      recordMode(req.Mode),
	}, req.Date)

	return toClassResponse(class), nil
}

// ────────────────────── SetTeamScore ──────────────────────

// SetTeamScore 팀 점수 입력. 팀 id 가 없으면 진단만 남기고 무시한다 (no-op)
func (s *scoreService) SetTeamScore(ctx context.Context, classID, eventID string, req *dto.SetTeamScoreRequest, callerID string) (*dto.ClassResponse, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	res, ok := class.Results[eventID]
	if !ok {
		s.logger.Warn("팀 점수 입력: 종목 결과 없음",
			zap.String("class_id", classID), zap.String("event_id", eventID))
		return toClassResponse(class), nil
	}

	score := ParseScore(req.Score)

	found := false
	for i := range res.Teams {
		if res.Teams[i].ID == req.TeamID {
			res.Teams[i].Score = score
			found = true
			break
		}
	}
	if !found {
		s.logger.Warn("팀 점수 입력: 팀 id 없음",
			zap.String("class_id", classID), zap.String("team_id", req.TeamID))
		return toClassResponse(class), nil
	}

	if req.Date != "" {
		res.Date = req.Date
	}
	recalcTeams(&res)
	class.Results[eventID] = res
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("팀 점수 저장 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	// 팀원 각각에 대해 팀 점수를 달아 기록을 남긴다
	teamID := req.TeamID
	for i := range res.Teams {
		if res.Teams[i].ID != teamID {
			continue
		}
		for _, memberID := range res.Teams[i].MemberIDs {
			s.appendRecord(ctx, class, eventID, model.StudentRecord{
				StudentID: memberID,
				Score:     score,
				Mode:      recordMode(req.Mode),
				TeamID:    &teamID,
				TeamScore: &score,
			}, req.Date)
		}
	}

	return toClassResponse(class), nil
}

// ────────────────────── SetParticipants ──────────────────────

// SetParticipants 개인전 참가자 지정
// 참가자에서 빠져도 이전 점수는 맵에 남는다 — 다시 추가하면 마지막 점수가 복원된다
func (s *scoreService) SetParticipants(ctx context.Context, classID, eventID string, req *dto.SetParticipantsRequest, callerID string) (*dto.ClassResponse, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	res := class.Results[eventID]
	res.ParticipantIDs = append([]string(nil), req.ParticipantIDs...)
	recalcIndividual(&res)

	if class.Results == nil {
		class.Results = model.ResultMap{}
	}
	class.Results[eventID] = res
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("참가자 저장 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	return toClassResponse(class), nil
}

// ────────────────────── Standings ──────────────────────

// Standings (학년, 날짜)의 활성 종목 총점으로 학급 순위를 만든다
// 총점은 각 결과의 공식 합계만 더한다. 동점은 깨지 않는다 (조회 순서 유지)
func (s *scoreService) Standings(ctx context.Context, grade int, date string) ([]dto.StandingResponse, error) {
	cfg, err := s.repo.GradeConfig.GetByGrade(ctx, grade)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 설정이 아직 없으면 활성 종목도 없다
			cfg = &model.GradeConfig{Grade: grade, Migrated: true}
		} else {
			s.logger.Error("학년 설정 조회 실패", zap.Int("grade", grade), zap.Error(err))
			return nil, err
		}
	}

	effective := resolveDateConfig(cfg, date)
	active := make([]string, 0, len(effective))
	for id, setting := range effective {
		if setting.Selected {
			active = append(active, id)
		}
	}

	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return nil, err
	}

	return rankClasses(classes, active), nil
}

// ────────────────────── ResetEventResults ──────────────────────

// ResetEventResults 한 학급-종목의 결과와 기록을 초기화한다
// 파괴적 작업 — 호출 전 사용자 확인을 거쳐야 한다
func (s *scoreService) ResetEventResults(ctx context.Context, classID, eventID string, callerID string) error {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return err
	}

	if _, ok := class.Results[eventID]; !ok {
		return nil // 초기화할 결과 없음
	}
	delete(class.Results, eventID)
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("결과 초기화 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return err
	}

	if err := s.repo.StudentRecord.DeleteByClassEvent(ctx, classID, eventID); err != nil {
		s.logger.Error("기록 초기화 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}

// ── 내부 헬퍼 ──

func (s *scoreService) getClass(ctx context.Context, classID string) (*model.ClassTeam, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("학급 조회 실패", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}
	return class, nil
}

// appendRecord 점수 저장 시 추가 전용 기록 행을 떠낸다
// 실패해도 점수 저장 자체는 유효하므로 진단만 남긴다 (중복 부작용을 피하기 위해 재시도 없음)
func (s *scoreService) appendRecord(ctx context.Context, class *model.ClassTeam, eventID string, record model.StudentRecord, date string) {
	day := time.Now()
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			day = parsed
		}
	}

	record.EventID = eventID
	record.ClassID = class.ClassID
	record.Grade = class.Grade
	record.Date = datatypes.Date(day)

	if err := s.repo.StudentRecord.Create(ctx, &record); err != nil {
		s.logger.Warn("기록 투영 저장 실패",
			zap.String("class_id", class.ClassID),
			zap.String("student_id", record.StudentID),
			zap.Error(err))
	}
}

func recordMode(raw string) model.RecordMode {
	if mode := model.RecordMode(raw); mode.Valid() {
		return mode
	}
	return model.RecordModeCompetition
}

func toClassResponse(class *model.ClassTeam) *dto.ClassResponse {
	students := make([]dto.StudentResponse, 0, len(class.Students))
	for _, st := range class.Students {
		students = append(students, dto.StudentResponse{
			ID:         st.ID,
			Name:       st.Name,
			AccessCode: st.AccessCode,
		})
	}

	results := make(map[string]dto.ClassResultResponse, len(class.Results))
	for id, res := range class.Results {
		teams := make([]dto.TeamResponse, 0, len(res.Teams))
		for _, team := range res.Teams {
			teams = append(teams, dto.TeamResponse{
				ID:        team.ID,
				Name:      team.Name,
				MemberIDs: team.MemberIDs,
				Score:     team.Score,
			})
		}
		results[id] = dto.ClassResultResponse{
			Score:              res.Score,
			Date:               res.Date,
			ParticipantIDs:     res.ParticipantIDs,
			StudentScores:      res.StudentScores,
			Teams:              teams,
			TeamParticipantIDs: res.TeamParticipantIDs,
		}
	}

	return &dto.ClassResponse{
		ID:        class.ClassID,
		Grade:     class.Grade,
		Name:      class.Name,
		Students:  students,
		Results:   results,
		UpdatedAt: class.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
