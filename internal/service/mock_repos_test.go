package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.CompetitionEvent
	order  []string // 생성순 유지 (List 가 created_at ASC 이므로)
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.CompetitionEvent)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.CompetitionEvent) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("event-%d", len(m.order)+1)
	}
	m.events[event.EventID] = event
	m.order = append(m.order, event.EventID)
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.CompetitionEvent, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context) ([]model.CompetitionEvent, error) {
	result := make([]model.CompetitionEvent, 0, len(m.order))
	for _, id := range m.order {
		if e, ok := m.events[id]; ok {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEventRepo) ListByType(_ context.Context, eventType model.EventType) ([]model.CompetitionEvent, error) {
	var result []model.CompetitionEvent
	for _, id := range m.order {
		if e, ok := m.events[id]; ok && e.Type == eventType {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.CompetitionEvent) error {
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.events, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[string]*model.ClassTeam
	saves   int // Save 호출 횟수 (문서 전체 저장 검증용)
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.ClassTeam)}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.ClassTeam) error {
	if class.ClassID == "" {
		class.ClassID = "class-" + class.Name
	}
	class.UpdatedAt = time.Now()
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.ClassTeam, error) {
	if c, ok := m.classes[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) ListByGrade(_ context.Context, grade int) ([]model.ClassTeam, error) {
	var result []model.ClassTeam
	for _, c := range m.classes {
		if c.Grade == grade {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockClassRepo) List(_ context.Context) ([]model.ClassTeam, error) {
	var result []model.ClassTeam
	for _, c := range m.classes {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Grade != result[j].Grade {
			return result[i].Grade < result[j].Grade
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockClassRepo) Save(_ context.Context, class *model.ClassTeam) error {
	class.UpdatedAt = time.Now()
	copied := *class
	m.classes[class.ClassID] = &copied
	m.saves++
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.classes, id)
	return nil
}

func (m *mockClassRepo) MaxUpdatedAt(_ context.Context, grade int) (time.Time, error) {
	var max time.Time
	for _, c := range m.classes {
		if c.Grade == grade && c.UpdatedAt.After(max) {
			max = c.UpdatedAt
		}
	}
	return max, nil
}

// ── Mock GradeConfigRepository ──

type mockGradeConfigRepo struct {
	configs map[int]*model.GradeConfig
}

func newMockGradeConfigRepo() *mockGradeConfigRepo {
	return &mockGradeConfigRepo{configs: make(map[int]*model.GradeConfig)}
}

func (m *mockGradeConfigRepo) Create(_ context.Context, cfg *model.GradeConfig) error {
	if cfg.ConfigID == "" {
		cfg.ConfigID = fmt.Sprintf("config-%d", cfg.Grade)
	}
	m.configs[cfg.Grade] = cfg
	return nil
}

func (m *mockGradeConfigRepo) GetByGrade(_ context.Context, grade int) (*model.GradeConfig, error) {
	if c, ok := m.configs[grade]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeConfigRepo) Save(_ context.Context, cfg *model.GradeConfig) error {
	m.configs[cfg.Grade] = cfg
	return nil
}

// ── Mock StudentRecordRepository ──

type mockStudentRecordRepo struct {
	records []model.StudentRecord
}

func newMockStudentRecordRepo() *mockStudentRecordRepo {
	return &mockStudentRecordRepo{}
}

func (m *mockStudentRecordRepo) Create(_ context.Context, record *model.StudentRecord) error {
	if record.RecordID == "" {
		record.RecordID = fmt.Sprintf("record-%d", len(m.records)+1)
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockStudentRecordRepo) BatchCreate(_ context.Context, records []model.StudentRecord) error {
	for i := range records {
		if err := m.Create(context.Background(), &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockStudentRecordRepo) ListByStudent(_ context.Context, studentID string) ([]model.StudentRecord, error) {
	var result []model.StudentRecord
	for _, r := range m.records {
		if r.StudentID == studentID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockStudentRecordRepo) ListByClassEvent(_ context.Context, classID, eventID string) ([]model.StudentRecord, error) {
	var result []model.StudentRecord
	for _, r := range m.records {
		if r.ClassID == classID && r.EventID == eventID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockStudentRecordRepo) DeleteByClassEvent(_ context.Context, classID, eventID string) error {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.ClassID == classID && r.EventID == eventID {
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return nil
}

// ── Mock AccessCodeRepository ──

type mockAccessCodeRepo struct {
	codes map[string]*model.AccessCode
}

func newMockAccessCodeRepo() *mockAccessCodeRepo {
	return &mockAccessCodeRepo{codes: make(map[string]*model.AccessCode)}
}

func (m *mockAccessCodeRepo) Create(_ context.Context, code *model.AccessCode) error {
	if _, exists := m.codes[code.Code]; exists {
		return fmt.Errorf("duplicate code: %s", code.Code)
	}
	m.codes[code.Code] = code
	return nil
}

func (m *mockAccessCodeRepo) GetByCode(_ context.Context, code string) (*model.AccessCode, error) {
	if c, ok := m.codes[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccessCodeRepo) Exists(_ context.Context, code string) (bool, error) {
	_, ok := m.codes[code]
	return ok, nil
}

func (m *mockAccessCodeRepo) ListCodes(_ context.Context) ([]string, error) {
	result := make([]string, 0, len(m.codes))
	for code := range m.codes {
		result = append(result, code)
	}
	return result, nil
}
