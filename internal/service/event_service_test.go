package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 테스트 보조 ──

func setupTestEventService() (EventService, *mockEventRepo) {
	eventRepo := newMockEventRepo()
	repo := &repository.Repository{
		User:          newMockUserRepo(),
		Event:         eventRepo,
		Class:         newMockClassRepo(),
		GradeConfig:   newMockGradeConfigRepo(),
		StudentRecord: newMockStudentRecordRepo(),
		AccessCode:    newMockAccessCodeRepo(),
	}
	logger := zap.NewNop()
	svc := NewEventService(repo, logger)
	return svc, eventRepo
}

// ── Create 테스트 ──

func TestEventService_Create_Defaults(t *testing.T) {
	svc, _ := setupTestEventService()

	resp, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name: "개인줄넘기",
		Type: "INDIVIDUAL",
	}, "teacher-001")
	if err != nil {
		t.Fatalf("Create 성공해야 함: %v", err)
	}

	if resp.ID == "" {
		t.Error("종목 id 가 발급되어야 함")
	}
	if resp.DefaultTimeLimit != 60 {
		t.Errorf("기본 제한시간 = %d, 기대값 60", resp.DefaultTimeLimit)
	}
	if resp.DefaultMaxParticipants != 8 {
		t.Errorf("기본 최대 인원 = %d, 기대값 8", resp.DefaultMaxParticipants)
	}
}

func TestEventService_Create_InvalidType(t *testing.T) {
	svc, _ := setupTestEventService()
	_, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name: "달리기",
		Type: "RELAY",
	}, "teacher-001")
	if !errors.Is(err, ErrEventTypeInvalid) {
		t.Errorf("기대 ErrEventTypeInvalid, 실제: %v", err)
	}
}

// ── Update 테스트 ──

func TestEventService_Update(t *testing.T) {
	svc, _ := setupTestEventService()
	created, _ := svc.Create(context.Background(), &dto.CreateEventRequest{
		Name: "개인줄넘기",
		Type: "INDIVIDUAL",
	}, "teacher-001")

	newName := "개인 줄넘기 1분"
	newLimit := 90
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateEventRequest{
		Name:             &newName,
		DefaultTimeLimit: &newLimit,
	}, "teacher-001")
	if err != nil {
		t.Fatalf("Update 성공해야 함: %v", err)
	}

	if resp.Name != newName || resp.DefaultTimeLimit != 90 {
		t.Errorf("수정 반영 안 됨: %+v", resp)
	}
	// 채점 방식은 바뀌지 않는다
	if resp.Type != "INDIVIDUAL" {
		t.Errorf("Type 이 변경됨: %q", resp.Type)
	}
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestEventService()
	name := "새 이름"
	_, err := svc.Update(context.Background(), "ghost", &dto.UpdateEventRequest{Name: &name}, "teacher-001")
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("기대 ErrEventNotFound, 실제: %v", err)
	}
}

// ── List 테스트 ──

func TestEventService_List_CreatedOrder(t *testing.T) {
	svc, _ := setupTestEventService()
	first, _ := svc.Create(context.Background(), &dto.CreateEventRequest{Name: "A", Type: "INDIVIDUAL"}, "t")
	second, _ := svc.Create(context.Background(), &dto.CreateEventRequest{Name: "B", Type: "TEAM"}, "t")

	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 성공해야 함: %v", err)
	}
	if len(events) != 2 || events[0].ID != first.ID || events[1].ID != second.ID {
		t.Errorf("생성순으로 반환돼야 함: %+v", events)
	}
}

// ── Delete 테스트 ──

func TestEventService_Delete(t *testing.T) {
	svc, _ := setupTestEventService()
	created, _ := svc.Create(context.Background(), &dto.CreateEventRequest{Name: "A", Type: "INDIVIDUAL"}, "t")

	if err := svc.Delete(context.Background(), created.ID, "teacher-001"); err != nil {
		t.Fatalf("Delete 성공해야 함: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("삭제된 종목은 조회되지 않아야 함: %v", err)
	}
}
