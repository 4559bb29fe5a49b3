package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/redis"
)

// ── 학년 설정 모듈 비즈니스 오류 ──

var (
	ErrGradeInvalid      = errors.New("학년은 1~6 이어야 합니다")
	ErrGradeHasNoClasses = errors.New("해당 학년에 등록된 학급이 없습니다")
	ErrEventNotFound     = errors.New("종목을 찾을 수 없습니다")
)

// GradeConfigService 학년별 날짜 단위 종목 설정 비즈니스 인터페이스
type GradeConfigService interface {
	GetEffective(ctx context.Context, grade int, date string) (*dto.EffectiveConfigResponse, error)
	SelectEvent(ctx context.Context, grade int, eventID string, req *dto.SelectEventRequest, callerID string) error
	CopyEvent(ctx context.Context, grade int, eventID string, req *dto.CopyEventRequest, callerID string) (*dto.EventResponse, error)
	Reorder(ctx context.Context, grade int, req *dto.ReorderRequest) ([]string, error)
}

type gradeConfigService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewGradeConfigService GradeConfigService 인스턴스 생성
func NewGradeConfigService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) GradeConfigService {
	return &gradeConfigService{repo: repo, rdb: rdb, logger: logger}
}

// ────────────────────── 설정 로드 / 구버전 이행 ──────────────────────

// ensureConfig 학년 설정 문서를 로드한다. 없으면 기본값으로 생성하고,
// 구버전(날짜 무관) 선택 맵이 남아 있으면 정확히 한 번 "오늘" 날짜로 이행한다.
// Migrated 마커로 재이행을 막는다 — 이행 후 구버전 맵은 더 이상 권위가 없다.
func (s *gradeConfigService) ensureConfig(ctx context.Context, grade int, callerID string) (*model.GradeConfig, error) {
	if grade < 1 || grade > 6 {
		return nil, ErrGradeInvalid
	}

	cfg, err := s.repo.GradeConfig.GetByGrade(ctx, grade)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("학년 설정 조회 실패", zap.Int("grade", grade), zap.Error(err))
			return nil, err
		}
		cfg = &model.GradeConfig{
			Grade:        grade,
			Events:       model.EventSettingMap{},
			DateEvents:   model.DateEventMap{},
			CustomEvents: model.CustomEventMap{},
			Migrated:     true, // 새 문서는 이행할 구버전 데이터가 없다
		}
		if callerID != "" {
			cfg.CreatedBy = &callerID
			cfg.UpdatedBy = &callerID
		}
		if err := s.repo.GradeConfig.Create(ctx, cfg); err != nil {
			s.logger.Error("학년 설정 생성 실패", zap.Int("grade", grade), zap.Error(err))
			return nil, err
		}
		return cfg, nil
	}

	if !cfg.Migrated {
		if len(cfg.Events) > 0 && len(cfg.DateEvents) == 0 {
			today := time.Now().Format("2006-01-02")
			scoped := make(model.EventSettingMap, len(cfg.Events))
			for id, setting := range cfg.Events {
				scoped[id] = setting
			}
			cfg.DateEvents = model.DateEventMap{today: scoped}
			s.logger.Info("구버전 종목 설정을 날짜 단위로 이행",
				zap.Int("grade", grade), zap.String("date", today))
		}
		cfg.Migrated = true
		if err := s.repo.GradeConfig.Save(ctx, cfg); err != nil {
			s.logger.Error("학년 설정 이행 저장 실패", zap.Int("grade", grade), zap.Error(err))
			return nil, err
		}
	}

	return cfg, nil
}

// resolveDateConfig (학년 설정, 날짜) → 유효 선택 맵
// 2단계 조회: 날짜별 맵 → (미이행 문서에 한해) 구버전 기본 맵 → 빈 맵.
// 중첩 맵을 호출처마다 더듬지 않도록 이 해석기 하나만 쓴다.
func resolveDateConfig(cfg *model.GradeConfig, date string) model.EventSettingMap {
	if m, ok := cfg.DateEvents[date]; ok {
		return m
	}
	if !cfg.Migrated && len(cfg.Events) > 0 {
		return cfg.Events
	}
	return model.EventSettingMap{}
}

// findEventInfo 전역 종목 또는 해당 날짜의 복사 종목을 찾는다
func (s *gradeConfigService) findEventInfo(ctx context.Context, cfg *model.GradeConfig, date, eventID string) (*model.EventInfo, bool, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err == nil {
		info := event.Info()
		return &info, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if info := cfg.CustomEventFor(date, eventID); info != nil {
		return info, true, nil
	}
	return nil, false, ErrEventNotFound
}

// ────────────────────── GetEffective ──────────────────────

func (s *gradeConfigService) GetEffective(ctx context.Context, grade int, date string) (*dto.EffectiveConfigResponse, error) {
	cfg, err := s.ensureConfig(ctx, grade, "")
	if err != nil {
		return nil, err
	}

	effective := resolveDateConfig(cfg, date)

	events := make(map[string]dto.EventSettingResponse, len(effective))
	for id, setting := range effective {
		events[id] = dto.EventSettingResponse{
			Selected:           setting.Selected,
			TargetParticipants: setting.TargetParticipants,
		}
	}

	customs := make([]dto.EventResponse, 0, len(cfg.CustomEvents[date]))
	for _, info := range cfg.CustomEvents[date] {
		customs = append(customs, toEventInfoResponse(info, date))
	}

	order, err := s.activeOrder(ctx, cfg, grade, date)
	if err != nil {
		return nil, err
	}

	return &dto.EffectiveConfigResponse{
		Grade:        grade,
		Date:         date,
		Events:       events,
		CustomEvents: customs,
		ActiveOrder:  order,
	}, nil
}

// activeOrder 선택된 종목의 표시 순서를 계산한다
// 기준 순서: 전역 종목 생성순 → 그 날짜 복사 종목 등록순. Redis 에 저장된
// 사용자 순서가 있으면 그것을 우선하되 활성 집합 변화를 맞춘다 (뒤에 추가, 이탈 제거).
func (s *gradeConfigService) activeOrder(ctx context.Context, cfg *model.GradeConfig, grade int, date string) ([]string, error) {
	effective := resolveDateConfig(cfg, date)

	globals, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("종목 목록 조회 실패", zap.Error(err))
		return nil, err
	}

	active := make([]string, 0, len(effective))
	for _, event := range globals {
		if effective[event.EventID].Selected {
			active = append(active, event.EventID)
		}
	}
	for _, info := range cfg.CustomEvents[date] {
		if effective[info.ID].Selected {
			active = append(active, info.ID)
		}
	}

	var prev []string
	if s.rdb != nil {
		prev, err = s.rdb.GetEventOrder(ctx, grade, date)
		if err != nil {
			// Redis 장애 시 기본 순서로 동작
			s.logger.Warn("종목 순서 조회 실패", zap.Error(err))
			prev = nil
		}
	}

	order := reconcileOrder(prev, active)

	if s.rdb != nil {
		if err := s.rdb.SetEventOrder(ctx, grade, date, order); err != nil {
			s.logger.Warn("종목 순서 저장 실패", zap.Error(err))
		}
	}
	return order, nil
}

// ────────────────────── SelectEvent ──────────────────────

// SelectEvent 종목을 선택하거나 해제한다
//   - 선택: 학급이 없는 학년에서는 거부 (사용자 검증 오류)
//   - 전역 종목 해제: 설정만 selected=false 로 패치, 학급 결과는 보존 (소프트 해제 —
//     재선택 시 이전 점수가 그대로 복원된다)
//   - 복사 종목 해제: 완전 삭제 — 복사 목록, 날짜 설정, 전 학급 결과를 한 트랜잭션으로 제거
func (s *gradeConfigService) SelectEvent(ctx context.Context, grade int, eventID string, req *dto.SelectEventRequest, callerID string) error {
	cfg, err := s.ensureConfig(ctx, grade, callerID)
	if err != nil {
		return err
	}

	if req.Selected {
		return s.selectEvent(ctx, cfg, grade, eventID, req, callerID)
	}

	if cfg.CustomEventFor(req.Date, eventID) != nil {
		return s.removeCustomEvent(ctx, cfg, grade, eventID, req.Date, callerID)
	}
	return s.deselectGlobalEvent(ctx, cfg, eventID, req.Date, callerID)
}

func (s *gradeConfigService) selectEvent(ctx context.Context, cfg *model.GradeConfig, grade int, eventID string, req *dto.SelectEventRequest, callerID string) error {
	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return err
	}
	if len(classes) == 0 {
		return ErrGradeHasNoClasses
	}

	info, _, err := s.findEventInfo(ctx, cfg, req.Date, eventID)
	if err != nil {
		return err
	}

	target := req.TargetParticipants
	if target <= 0 {
		target = info.DefaultMaxParticipants
	}

	if cfg.DateEvents == nil {
		cfg.DateEvents = model.DateEventMap{}
	}
	if cfg.DateEvents[req.Date] == nil {
		cfg.DateEvents[req.Date] = model.EventSettingMap{}
	}
	cfg.DateEvents[req.Date][eventID] = model.EventSetting{
		Selected:           true,
		TargetParticipants: target,
	}
	cfg.UpdatedBy = &callerID

	if err := s.repo.GradeConfig.Save(ctx, cfg); err != nil {
		s.logger.Error("종목 선택 저장 실패", zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}

func (s *gradeConfigService) deselectGlobalEvent(ctx context.Context, cfg *model.GradeConfig, eventID, date string, callerID string) error {
	if cfg.DateEvents == nil || cfg.DateEvents[date] == nil {
		return nil // 해제할 설정이 없음
	}

	setting := cfg.DateEvents[date][eventID]
	setting.Selected = false
	cfg.DateEvents[date][eventID] = setting
	cfg.UpdatedBy = &callerID

	// 학급 결과는 건드리지 않는다: 재선택 시 무손실 복원이 보장되어야 한다
	if err := s.repo.GradeConfig.Save(ctx, cfg); err != nil {
		s.logger.Error("종목 해제 저장 실패", zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}

// removeCustomEvent 복사 종목을 날짜에서 완전히 제거한다
// 복사 목록 항목, 날짜 설정 항목, 전 학급의 결과 항목 — 셋 모두를 한 트랜잭션으로.
// 부분 제거 상태가 관측되어서는 안 된다.
func (s *gradeConfigService) removeCustomEvent(ctx context.Context, cfg *model.GradeConfig, grade int, eventID, date string, callerID string) error {
	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return err
	}

	customs := cfg.CustomEvents[date]
	filtered := make([]model.EventInfo, 0, len(customs))
	for _, info := range customs {
		if info.ID != eventID {
			filtered = append(filtered, info)
		}
	}
	if len(filtered) == 0 {
		delete(cfg.CustomEvents, date)
	} else {
		cfg.CustomEvents[date] = filtered
	}

	if cfg.DateEvents[date] != nil {
		delete(cfg.DateEvents[date], eventID)
	}
	cfg.UpdatedBy = &callerID

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("트랜잭션 시작 실패", zap.Error(err))
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.GradeConfig.Save(ctx, cfg); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("복사 종목 제거 저장 실패", zap.String("event_id", eventID), zap.Error(err))
		return err
	}

	for i := range classes {
		if _, ok := classes[i].Results[eventID]; !ok {
			continue
		}
		delete(classes[i].Results, eventID)
		classes[i].UpdatedBy = &callerID
		if err := txRepo.Class.Save(ctx, &classes[i]); err != nil {
			tx.Rollback()
			s.logger.Error("학급 결과 제거 실패",
				zap.String("class_id", classes[i].ClassID), zap.Error(err))
			return err
		}
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("트랜잭션 커밋 실패", zap.Error(err))
			return err
		}
	}
	return nil
}

// ────────────────────── CopyEvent ──────────────────────

// CopyEvent 같은 드릴을 같은 날 다시 돌리기 위한 종목 복사 ("복사")
//  1. 원본 이름에서 접미 번호를 뗀 기본 이름으로 다음 번호를 정한다
//  2. 새 전역 고유 id 를 발급한다 (id 재사용 금지)
//  3. 원본 결과가 있는 학급마다 참가자/팀 구성은 그대로, 점수는 전부 0인 결과를 만든다
//  4. 그 날짜 설정에 selected=true 로 등록한다
func (s *gradeConfigService) CopyEvent(ctx context.Context, grade int, eventID string, req *dto.CopyEventRequest, callerID string) (*dto.EventResponse, error) {
	cfg, err := s.ensureConfig(ctx, grade, callerID)
	if err != nil {
		return nil, err
	}

	source, _, err := s.findEventInfo(ctx, cfg, req.Date, eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			// 데이터 정합 오류: 복사 대상이 사라짐 — 진단만 남기고 사용자 오류로 처리
			s.logger.Warn("복사 대상 종목 없음", zap.String("event_id", eventID))
		}
		return nil, err
	}

	// 이름 후보: 전역 종목 전체 + 그 날짜의 복사 종목
	globals, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("종목 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	names := make([]string, 0, len(globals)+len(cfg.CustomEvents[req.Date]))
	for _, e := range globals {
		names = append(names, e.Name)
	}
	for _, info := range cfg.CustomEvents[req.Date] {
		names = append(names, info.Name)
	}

	copyInfo := model.EventInfo{
		ID:                     uuid.New().String(),
		Name:                   nextCopyName(baseEventName(source.Name), names),
		Type:                   source.Type,
		DefaultTimeLimit:       source.DefaultTimeLimit,
		DefaultMaxParticipants: source.DefaultMaxParticipants,
		Description:            source.Description,
	}

	// 원본의 목표 인원을 물려받는다 (설정이 없으면 기본 인원)
	target := source.DefaultMaxParticipants
	if setting, ok := resolveDateConfig(cfg, req.Date)[eventID]; ok && setting.TargetParticipants > 0 {
		target = setting.TargetParticipants
	}

	if cfg.CustomEvents == nil {
		cfg.CustomEvents = model.CustomEventMap{}
	}
	cfg.CustomEvents[req.Date] = append(cfg.CustomEvents[req.Date], copyInfo)

	if cfg.DateEvents == nil {
		cfg.DateEvents = model.DateEventMap{}
	}
	if cfg.DateEvents[req.Date] == nil {
		cfg.DateEvents[req.Date] = model.EventSettingMap{}
	}
	cfg.DateEvents[req.Date][copyInfo.ID] = model.EventSetting{
		Selected:           true,
		TargetParticipants: target,
	}
	cfg.UpdatedBy = &callerID

	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("트랜잭션 시작 실패", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.GradeConfig.Save(ctx, cfg); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("종목 복사 저장 실패", zap.Error(err))
		return nil, err
	}

	for i := range classes {
		sourceRes, ok := classes[i].Results[eventID]
		if !ok {
			continue
		}
		// 참가/팀 구성은 복사하되 점수는 절대 복사하지 않는다
		classes[i].Results[copyInfo.ID] = cloneResultForRerun(sourceRes, req.Date)
		classes[i].UpdatedBy = &callerID
		if err := txRepo.Class.Save(ctx, &classes[i]); err != nil {
			tx.Rollback()
			s.logger.Error("학급 결과 복사 실패",
				zap.String("class_id", classes[i].ClassID), zap.Error(err))
			return nil, err
		}
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("트랜잭션 커밋 실패", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("종목 복사 완료",
		zap.Int("grade", grade),
		zap.String("source_id", eventID),
		zap.String("copy_id", copyInfo.ID),
		zap.String("copy_name", copyInfo.Name),
	)

	resp := toEventInfoResponse(copyInfo, req.Date)
	return &resp, nil
}

// cloneResultForRerun 재시행용 결과 복제: 구성 유지, 점수 0, 날짜 태깅
func cloneResultForRerun(source model.ClassResult, date string) model.ClassResult {
	cloned := model.ClassResult{
		Score: 0,
		Date:  date,
	}

	if len(source.ParticipantIDs) > 0 {
		cloned.ParticipantIDs = append([]string(nil), source.ParticipantIDs...)
		cloned.StudentScores = make(map[string]int, len(source.ParticipantIDs))
		for _, id := range source.ParticipantIDs {
			cloned.StudentScores[id] = 0
		}
	}

	if len(source.Teams) > 0 {
		cloned.Teams = make([]model.Team, 0, len(source.Teams))
		for _, team := range source.Teams {
			cloned.Teams = append(cloned.Teams, model.Team{
				ID:        team.ID,
				Name:      team.Name,
				MemberIDs: append([]string(nil), team.MemberIDs...),
				Score:     0,
			})
		}
	}
	if len(source.TeamParticipantIDs) > 0 {
		cloned.TeamParticipantIDs = append([]string(nil), source.TeamParticipantIDs...)
	}

	return cloned
}

// ────────────────────── Reorder ──────────────────────

// Reorder 표시 순서에서 두 위치를 교환한다 (드래그 정렬)
func (s *gradeConfigService) Reorder(ctx context.Context, grade int, req *dto.ReorderRequest) ([]string, error) {
	cfg, err := s.ensureConfig(ctx, grade, "")
	if err != nil {
		return nil, err
	}

	order, err := s.activeOrder(ctx, cfg, grade, req.Date)
	if err != nil {
		return nil, err
	}

	order = swapPositions(order, req.From, req.To)

	if s.rdb != nil {
		if err := s.rdb.SetEventOrder(ctx, grade, req.Date, order); err != nil {
			s.logger.Warn("종목 순서 저장 실패", zap.Error(err))
		}
	}
	return order, nil
}

// ── 내부 헬퍼 ──

func toEventInfoResponse(info model.EventInfo, date string) dto.EventResponse {
	return dto.EventResponse{
		ID:                     info.ID,
		Name:                   info.Name,
		Type:                   string(info.Type),
		DefaultTimeLimit:       info.DefaultTimeLimit,
		DefaultMaxParticipants: info.DefaultMaxParticipants,
		Description:            info.Description,
		IsCustom:               true,
		CustomDate:             date,
	}
}
