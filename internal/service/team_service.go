package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 팀 모듈 비즈니스 오류 ──

var (
	ErrPairSizeInvalid  = errors.New("2인 1조 종목의 팀은 정확히 2명이어야 합니다")
	ErrTeamSizeInvalid  = errors.New("팀은 1명 이상이어야 합니다")
	ErrEventNotTeamType = errors.New("팀을 만들 수 없는 종목입니다")
	ErrMemberNotInClass = errors.New("학급 명단에 없는 학생이 포함되어 있습니다")
)

// TeamService PAIR/TEAM 종목의 팀 구성 비즈니스 인터페이스
// 팀 구성 변경 시 team_participant_ids (팀 소속 학생 집합)도 함께 유지한다
type TeamService interface {
	CreateTeam(ctx context.Context, classID, eventID string, req *dto.CreateTeamRequest, callerID string) (*dto.ClassResponse, error)
	DeleteTeam(ctx context.Context, classID, eventID, teamID string, callerID string) (*dto.ClassResponse, error)
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService TeamService 인스턴스 생성
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

// ────────────────────── CreateTeam ──────────────────────

// CreateTeam 팀 생성. PAIR 는 정확히 2명, TEAM 은 1명 이상
// 한 학생이 여러 팀에 속하는 것은 막지 않는다 (같은 드릴을 여러 조로 도는 운영 관례)
func (s *teamService) CreateTeam(ctx context.Context, classID, eventID string, req *dto.CreateTeamRequest, callerID string) (*dto.ClassResponse, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	eventType, err := s.resolveEventType(ctx, class.Grade, eventID)
	if err != nil {
		return nil, err
	}
	if !eventType.TeamBased() {
		return nil, ErrEventNotTeamType
	}

	switch eventType {
	case model.EventTypePair:
		if len(req.MemberIDs) != 2 {
			return nil, ErrPairSizeInvalid
		}
	case model.EventTypeTeam:
		if len(req.MemberIDs) < 1 {
			return nil, ErrTeamSizeInvalid
		}
	}
	for _, id := range req.MemberIDs {
		if class.FindStudent(id) == nil {
			return nil, ErrMemberNotInClass
		}
	}

	res := class.Results[eventID]
	team := model.Team{
		ID:        uuid.NewString(),
		Name:      req.Name,
		MemberIDs: append([]string(nil), req.MemberIDs...),
	}
	if team.Name == "" {
		team.Name = defaultTeamName(eventType, len(res.Teams)+1)
	}
	res.Teams = append(res.Teams, team)
	res.TeamParticipantIDs = teamParticipantUnion(res.Teams)
	recalcTeams(&res)

	if class.Results == nil {
		class.Results = model.ResultMap{}
	}
	class.Results[eventID] = res
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("팀 생성 저장 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return toClassResponse(class), nil
}

// ────────────────────── DeleteTeam ──────────────────────

// DeleteTeam 팀 삭제. 팀 id 가 없으면 진단만 남기고 무시한다 (no-op)
func (s *teamService) DeleteTeam(ctx context.Context, classID, eventID, teamID string, callerID string) (*dto.ClassResponse, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	res, ok := class.Results[eventID]
	if !ok {
		s.logger.Warn("팀 삭제: 종목 결과 없음",
			zap.String("class_id", classID), zap.String("event_id", eventID))
		return toClassResponse(class), nil
	}

	kept := res.Teams[:0]
	found := false
	for _, team := range res.Teams {
		if team.ID == teamID {
			found = true
			continue
		}
		kept = append(kept, team)
	}
	if !found {
		s.logger.Warn("팀 삭제: 팀 id 없음",
			zap.String("class_id", classID), zap.String("team_id", teamID))
		return toClassResponse(class), nil
	}

	res.Teams = kept
	res.TeamParticipantIDs = teamParticipantUnion(res.Teams)
	recalcTeams(&res)
	class.Results[eventID] = res
	class.UpdatedBy = &callerID

	if err := s.repo.Class.Save(ctx, class); err != nil {
		s.logger.Error("팀 삭제 저장 실패",
			zap.String("class_id", classID), zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return toClassResponse(class), nil
}

// ── 내부 헬퍼 ──

func (s *teamService) getClass(ctx context.Context, classID string) (*model.ClassTeam, error) {
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

// resolveEventType 전역 템플릿을 먼저 찾고, 없으면 학년 설정의 날짜별 복사 종목을 뒤진다
func (s *teamService) resolveEventType(ctx context.Context, grade int, eventID string) (model.EventType, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err == nil {
		return event.Type, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	cfg, err := s.repo.GradeConfig.GetByGrade(ctx, grade)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEventNotFound
		}
		return "", err
	}
	for _, infos := range cfg.CustomEvents {
		for i := range infos {
			if infos[i].ID == eventID {
				return infos[i].Type, nil
			}
		}
	}
	return "", ErrEventNotFound
}

// teamParticipantUnion 모든 팀 소속 학생의 합집합 (팀 등장 순서 유지, 중복 제거)
func teamParticipantUnion(teams []model.Team) []string {
	seen := make(map[string]bool)
	union := make([]string, 0)
	for i := range teams {
		for _, id := range teams[i].MemberIDs {
			if !seen[id] {
				seen[id] = true
				union = append(union, id)
			}
		}
	}
	return union
}

func defaultTeamName(t model.EventType, n int) string {
	if t == model.EventTypePair {
		return fmt.Sprintf("조 %d", n)
	}
	return fmt.Sprintf("팀 %d", n)
}
