package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 접속 코드 모듈 비즈니스 오류 ──

var (
	ErrCodeNotFound = errors.New("접속 코드를 찾을 수 없습니다")
)

// 코드 문자표: 0/O, 1/I/l 처럼 헷갈리는 글자는 뺀다
// 학생이 종이에 적어 온 코드를 입력하는 상황을 전제로 한다
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	codeLength     = 4
	codeMaxRetries = 100
)

// AccessCodeService 학생 접속 코드 발급/조회 비즈니스 인터페이스
// 코드는 학년 단위로 일괄 발급하며, 발급된 코드는 절대 재생성하지 않는다
type AccessCodeService interface {
	EnsureCodes(ctx context.Context, grade int, callerID string) (int, error)
	Lookup(ctx context.Context, code string) (*dto.LookupResponse, error)
}

type accessCodeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccessCodeService AccessCodeService 인스턴스 생성
func NewAccessCodeService(repo *repository.Repository, logger *zap.Logger) AccessCodeService {
	return &accessCodeService{repo: repo, logger: logger}
}

// ────────────────────── EnsureCodes ──────────────────────

// EnsureCodes 학년 내 모든 학생에게 접속 코드를 보장한다 (지연 일괄 발급)
// 이미 코드가 있는 학생은 건너뛴다. 새로 발급한 코드 수를 반환
func (s *accessCodeService) EnsureCodes(ctx context.Context, grade int, callerID string) (int, error) {
	if grade < 1 || grade > 6 {
		return 0, ErrGradeInvalid
	}

	classes, err := s.repo.Class.ListByGrade(ctx, grade)
	if err != nil {
		s.logger.Error("학급 목록 조회 실패", zap.Int("grade", grade), zap.Error(err))
		return 0, err
	}

	// 발급된 전체 코드를 미리 올려 충돌 검사를 메모리에서 끝낸다
	existing, err := s.repo.AccessCode.ListCodes(ctx)
	if err != nil {
		s.logger.Error("발급 코드 목록 조회 실패", zap.Error(err))
		return 0, err
	}
	issued := make(map[string]bool, len(existing))
	for _, code := range existing {
		issued[code] = true
	}

	granted := 0
	for i := range classes {
		class := &classes[i]
		changed := false

		for j := range class.Students {
			st := &class.Students[j]
			if st.AccessCode != "" {
				continue
			}

			code := generateCode(issued)
			issued[code] = true
			st.AccessCode = code
			changed = true

			if err := s.repo.AccessCode.Create(ctx, &model.AccessCode{
				Code:        code,
				StudentID:   st.ID,
				StudentName: st.Name,
				ClassID:     class.ClassID,
				Grade:       class.Grade,
			}); err != nil {
				s.logger.Error("코드 투영 저장 실패",
					zap.String("code", code), zap.String("student_id", st.ID), zap.Error(err))
				return granted, err
			}
			granted++
		}

		if changed {
			class.UpdatedBy = &callerID
			if err := s.repo.Class.Save(ctx, class); err != nil {
				s.logger.Error("학급 명단 저장 실패",
					zap.String("class_id", class.ClassID), zap.Error(err))
				return granted, err
			}
		}
	}

	s.logger.Info("접속 코드 발급 완료", zap.Int("grade", grade), zap.Int("granted", granted))
	return granted, nil
}

// ────────────────────── Lookup ──────────────────────

// Lookup 접속 코드로 학생과 성장 기록을 조회한다 (인증 없는 공개 경로)
// 코드 외의 어떤 식별자도 받지 않는다
func (s *accessCodeService) Lookup(ctx context.Context, code string) (*dto.LookupResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	ac, err := s.repo.AccessCode.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		s.logger.Error("코드 조회 실패", zap.Error(err))
		return nil, err
	}

	records, err := s.repo.StudentRecord.ListByStudent(ctx, ac.StudentID)
	if err != nil {
		s.logger.Error("학생 기록 조회 실패", zap.String("student_id", ac.StudentID), zap.Error(err))
		return nil, err
	}

	resp := &dto.LookupResponse{
		StudentID:   ac.StudentID,
		StudentName: ac.StudentName,
		Grade:       ac.Grade,
		ClassID:     ac.ClassID,
		Records:     make([]dto.RecordResponse, 0, len(records)),
	}
	for i := range records {
		resp.Records = append(resp.Records, toRecordResponse(&records[i]))
	}
	return resp, nil
}

// ── 내부 헬퍼 ──

// generateCode 발급 집합과 겹치지 않는 4자리 코드를 만든다
// 100회 재시도 후에도 실패하면 타임스탬프 기반 코드로 폴백한다
// (문자표 31자 4자리 ≈ 92만 조합이므로 폴백은 사실상 도달하지 않음)
func generateCode(issued map[string]bool) string {
	for attempt := 0; attempt < codeMaxRetries; attempt++ {
		code := randomCode()
		if !issued[code] {
			return code
		}
	}

	base := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano()%1679616, 36)) // 36^4
	code := fmt.Sprintf("%04s", base)
	for issued[code] {
		code = randomCode()
	}
	return code
}

func randomCode() string {
	var b strings.Builder
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand 실패는 런타임 전체가 망가진 상황뿐이다
			n = big.NewInt(int64(time.Now().UnixNano()) % int64(len(codeAlphabet)))
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String()
}

func toRecordResponse(r *model.StudentRecord) dto.RecordResponse {
	resp := dto.RecordResponse{
		ID:        r.RecordID,
		StudentID: r.StudentID,
		EventID:   r.EventID,
		ClassID:   r.ClassID,
		Grade:     r.Grade,
		Score:     r.Score,
		Date:      time.Time(r.Date).Format("2006-01-02"),
		Mode:      string(r.Mode),
		TeamScore: r.TeamScore,
	}
	if r.TeamID != nil {
		resp.TeamID = *r.TeamID
	}
	return resp
}
