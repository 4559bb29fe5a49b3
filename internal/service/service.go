package service

import (
	"go.uber.org/zap"

	"github.com/geunssam/jumprope-competition-manager-sub000/config"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/jwt"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/redis"
)

// Service 모든 Service 의 집약 진입점
type Service struct {
	Auth        AuthService
	Event       EventService
	Class       ClassService
	Score       ScoreService
	Team        TeamService
	GradeConfig GradeConfigService
	AccessCode  AccessCodeService
	Record      RecordService
	Export      ExportService
	Live        LiveService
}

// NewService Service 집약 생성
// rdb 는 nil 일 수 있다: Redis 없는 구성에서는 블랙리스트·표시 순서 기능이 빠진 채 동작한다
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	score := NewScoreService(repo, logger)
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Event:       NewEventService(repo, logger),
		Class:       NewClassService(repo, logger),
		Score:       score,
		Team:        NewTeamService(repo, logger),
		GradeConfig: NewGradeConfigService(repo, rdb, logger),
		AccessCode:  NewAccessCodeService(repo, logger),
		Record:      NewRecordService(repo, logger),
		Export:      NewExportService(repo, logger),
		Live:        NewLiveService(repo, score, &cfg.Live, logger),
	}
}
