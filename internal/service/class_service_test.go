package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/repository"
)

// ── 테스트 보조 ──

func setupTestClassService() (ClassService, *mockClassRepo) {
	classRepo := newMockClassRepo()
	repo := &repository.Repository{
		User:          newMockUserRepo(),
		Event:         newMockEventRepo(),
		Class:         classRepo,
		GradeConfig:   newMockGradeConfigRepo(),
		StudentRecord: newMockStudentRecordRepo(),
		AccessCode:    newMockAccessCodeRepo(),
	}
	logger := zap.NewNop()
	svc := NewClassService(repo, logger)
	return svc, classRepo
}

// ── Create 테스트 ──

func TestClassService_Create(t *testing.T) {
	svc, _ := setupTestClassService()

	resp, err := svc.Create(context.Background(), &dto.CreateClassRequest{
		Grade: 3,
		Name:  " 3학년 1반 ",
		Students: []dto.StudentInput{
			{Name: "김하늘"},
			{ID: "custom-id", Name: "이바다"},
		},
	}, "teacher-001")
	if err != nil {
		t.Fatalf("Create 성공해야 함: %v", err)
	}

	if resp.Name != "3학년 1반" {
		t.Errorf("이름 공백이 정리돼야 함: %q", resp.Name)
	}
	if len(resp.Students) != 2 {
		t.Fatalf("학생 수 = %d, 기대값 2", len(resp.Students))
	}
	// id 없는 학생은 서버가 발급, 제공된 id 는 유지
	if resp.Students[0].ID == "" {
		t.Error("id 없는 학생에게 서버가 발급해야 함")
	}
	if resp.Students[1].ID != "custom-id" {
		t.Errorf("제공된 id 는 유지돼야 함: %q", resp.Students[1].ID)
	}
}

func TestClassService_Create_Validation(t *testing.T) {
	svc, _ := setupTestClassService()
	ctx := context.Background()
	students := []dto.StudentInput{{Name: "김하늘"}}

	if _, err := svc.Create(ctx, &dto.CreateClassRequest{Grade: 7, Name: "7-1", Students: students}, "t"); !errors.Is(err, ErrGradeInvalid) {
		t.Errorf("학년 범위 밖: 기대 ErrGradeInvalid, 실제 %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateClassRequest{Grade: 3, Name: "  ", Students: students}, "t"); !errors.Is(err, ErrClassNameRequired) {
		t.Errorf("빈 이름: 기대 ErrClassNameRequired, 실제 %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateClassRequest{Grade: 3, Name: "3-1"}, "t"); !errors.Is(err, ErrClassNoStudents) {
		t.Errorf("학생 없음: 기대 ErrClassNoStudents, 실제 %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateClassRequest{
		Grade: 3, Name: "3-1",
		Students: []dto.StudentInput{{Name: "김하늘"}, {Name: "  "}},
	}, "t"); !errors.Is(err, ErrStudentNameEmpty) {
		t.Errorf("빈 학생 이름: 기대 ErrStudentNameEmpty, 실제 %v", err)
	}
}

// ── UpdateRoster 테스트 ──

func TestClassService_UpdateRoster_KeepsCodesAndResults(t *testing.T) {
	svc, classRepo := setupTestClassService()
	class := seedClass(classRepo, "c1", 3, "3-1")
	class.Students[0].AccessCode = "AB23"
	class.Results = model.ResultMap{"e1": {Score: 42}}
	classRepo.Save(context.Background(), class)

	resp, err := svc.UpdateRoster(context.Background(), "c1", &dto.UpdateRosterRequest{
		Students: []dto.StudentInput{
			{ID: "s1", Name: "김하늘"}, // 기존 학생 유지
			{Name: "최강"},            // 신규 학생
		},
	}, "teacher-001")
	if err != nil {
		t.Fatalf("UpdateRoster 성공해야 함: %v", err)
	}

	if len(resp.Students) != 2 {
		t.Fatalf("학생 수 = %d, 기대값 2", len(resp.Students))
	}
	// id 가 유지된 학생은 접속 코드를 이어받는다
	if resp.Students[0].AccessCode != "AB23" {
		t.Errorf("기존 학생의 접속 코드가 사라짐: %q", resp.Students[0].AccessCode)
	}
	if resp.Students[1].AccessCode != "" {
		t.Errorf("신규 학생은 코드가 없어야 함: %q", resp.Students[1].AccessCode)
	}
	// 명단 교체는 결과를 건드리지 않는다
	if resp.Results["e1"].Score != 42 {
		t.Errorf("명단 수정으로 결과가 변경됨: %+v", resp.Results)
	}
}

func TestClassService_UpdateRoster_NotFound(t *testing.T) {
	svc, _ := setupTestClassService()
	_, err := svc.UpdateRoster(context.Background(), "ghost", &dto.UpdateRosterRequest{
		Students: []dto.StudentInput{{Name: "김하늘"}},
	}, "teacher-001")
	if !errors.Is(err, ErrClassNotFound) {
		t.Errorf("기대 ErrClassNotFound, 실제: %v", err)
	}
}

// ── Delete 테스트 ──

func TestClassService_Delete(t *testing.T) {
	svc, classRepo := setupTestClassService()
	seedClass(classRepo, "c1", 3, "3-1")

	if err := svc.Delete(context.Background(), "c1", "teacher-001"); err != nil {
		t.Fatalf("Delete 성공해야 함: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "c1"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("삭제된 학급은 조회되지 않아야 함: %v", err)
	}
}

func TestClassService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestClassService()
	if err := svc.Delete(context.Background(), "ghost", "teacher-001"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("기대 ErrClassNotFound, 실제: %v", err)
	}
}
