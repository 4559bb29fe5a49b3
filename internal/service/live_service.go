package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/geunssam/jumprope-competition-manager-sub000/config"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
	pkgerrors "github.com/geunssam/jumprope-competition-manager-sub000/pkg/errors"
)

// LiveService 실시간 스냅샷 피드(SSE) 비즈니스 인터페이스
//
// 설계 설명:
//   - 증분 이벤트가 아니라 전체 스냅샷 교체만 보낸다. 수신 측은 diff 를
//     계산할 필요 없이 받은 스냅샷으로 화면을 통째로 갈아끼운다
//   - 변경 감지는 학년 내 학급 문서의 MAX(updated_at) 폴링으로 한다
//   - 연결마다 독립 폴링이므로 서버 간 공유 상태가 없다 (수평 확장 안전)
type LiveService interface {
	Snapshot(ctx context.Context, grade int, date string) (*dto.LiveSnapshot, error)
	Stream(ctx context.Context, w http.ResponseWriter, grade int, date string) error
}

type liveService struct {
	repo   *repository.Repository
	score  ScoreService
	cfg    *config.LiveConfig
	logger *zap.Logger
}

// NewLiveService LiveService 인스턴스 생성
func NewLiveService(repo *repository.Repository, score ScoreService, cfg *config.LiveConfig, logger *zap.Logger) LiveService {
	return &liveService{repo: repo, score: score, cfg: cfg, logger: logger}
}

// ────────────────────── Snapshot ──────────────────────

// Snapshot (학년, 날짜)의 현재 전체 상태를 떠낸다
func (s *liveService) Snapshot(ctx context.Context, grade int, date string) (*dto.LiveSnapshot, error) {
	if grade < 1 || grade > 6 {
		return nil, ErrGradeInvalid
	}

	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return nil, err
	}
	standings, err := s.score.Standings(ctx, grade, date)
	if err != nil {
		return nil, err
	}

	return &dto.LiveSnapshot{
		Grade:     grade,
		Date:      date,
		Classes:   toClassResponses(classes),
		Standings: standings,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ────────────────────── Stream ──────────────────────

// Stream SSE 연결을 유지하며 변경 시마다 전체 스냅샷을 내보낸다
// 연결 직후 한 번 즉시 보내고, 이후에는 MAX(updated_at) 이 바뀔 때만 보낸다
// 변경이 없는 동안에는 주기적으로 keepalive 주석을 흘려 프록시 타임아웃을 막는다
func (s *liveService) Stream(ctx context.Context, w http.ResponseWriter, grade int, date string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return pkgerrors.ErrStreamUnsupported
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// 최초 스냅샷은 변경 여부와 무관하게 즉시 보낸다
	lastSeen, err := s.repo.Class.MaxUpdatedAt(ctx, grade)
	if err != nil {
		s.logger.Error("변경 시각 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return err
	}
	if err := s.writeSnapshot(ctx, w, flusher, grade, date); err != nil {
		return err
	}

	poll := time.NewTicker(s.cfg.PollInterval)
	defer poll.Stop()
	keepalive := time.NewTicker(s.cfg.Keepalive)
	defer keepalive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-poll.C:
			latest, err := s.repo.Class.MaxUpdatedAt(ctx, grade)
			if err != nil {
				// 일시적 DB 오류로 연결을 끊지 않는다. 다음 폴링에서 재시도
				s.logger.Warn("변경 시각 조회 실패", zap.Int("grade", grade), zap.Error(err))
				continue
			}
			if !latest.After(lastSeen) {
				continue
			}
			lastSeen = latest
			if err := s.writeSnapshot(ctx, w, flusher, grade, date); err != nil {
				return err
			}

		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return nil // 클라이언트가 떠났다
			}
			flusher.Flush()
		}
	}
}

func (s *liveService) writeSnapshot(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, grade int, date string) error {
	snapshot, err := s.Snapshot(ctx, grade, date)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
		return nil // 쓰기 실패 = 연결 종료
	}
	flusher.Flush()
	return nil
}
