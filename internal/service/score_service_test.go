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

func setupTestScoreService() (ScoreService, *mockClassRepo, *mockStudentRecordRepo, *mockGradeConfigRepo) {
	classRepo := newMockClassRepo()
	recordRepo := newMockStudentRecordRepo()
	configRepo := newMockGradeConfigRepo()
	repo := &repository.Repository{
		User:          newMockUserRepo(),
		Event:         newMockEventRepo(),
		Class:         classRepo,
		GradeConfig:   configRepo,
		StudentRecord: recordRepo,
		AccessCode:    newMockAccessCodeRepo(),
	}
	logger := zap.NewNop()
	svc := NewScoreService(repo, logger)
	return svc, classRepo, recordRepo, configRepo
}

func seedClass(classRepo *mockClassRepo, id string, grade int, name string) *model.ClassTeam {
	class := &model.ClassTeam{
		ClassID: id,
		Grade:   grade,
		Name:    name,
		Students: model.StudentList{
			{ID: "s1", Name: "김하늘"},
			{ID: "s2", Name: "이바다"},
			{ID: "s3", Name: "박산"},
		},
		Results: model.ResultMap{},
	}
	classRepo.Create(context.Background(), class)
	return class
}

// ── SetIndividualScore 테스트 ──

func TestScoreService_SetIndividualScore_Success(t *testing.T) {
	svc, classRepo, recordRepo, _ := setupTestScoreService()
	seedClass(classRepo, "c1", 3, "3-1")

	// 참가자 지정 후 점수 입력
	_, err := svc.SetParticipants(context.Background(), "c1", "e1", &dto.SetParticipantsRequest{
		ParticipantIDs: []string{"s1", "s2"},
	}, "teacher-001")
	if err != nil {
		t.Fatalf("SetParticipants 성공해야 함: %v", err)
	}

	result, err := svc.SetIndividualScore(context.Background(), "c1", "e1", &dto.SetIndividualScoreRequest{
		StudentID: "s1",
		Score:     "25",
		Date:      "2026-03-14",
	}, "teacher-001")
	if err != nil {
		t.Fatalf("SetIndividualScore 성공해야 함: %v", err)
	}

	res := result.Results["e1"]
	if res.StudentScores["s1"] != 25 {
		t.Errorf("학생 점수 = %d, 기대값 25", res.StudentScores["s1"])
	}
	if res.Score != 25 {
		t.Errorf("공식 합계 = %d, 기대값 25", res.Score)
	}
	if res.Date != "2026-03-14" {
		t.Errorf("결과 날짜 = %s, 기대값 2026-03-14", res.Date)
	}

	// 기록 투영이 한 건 쌓여야 한다
	records, _ := recordRepo.ListByStudent(context.Background(), "s1")
	if len(records) != 1 {
		t.Fatalf("기록 수 = %d, 기대값 1", len(records))
	}
	if records[0].Score != 25 || records[0].Mode != model.RecordModeCompetition {
		t.Errorf("기록 내용이 다름: %+v", records[0])
	}
}

func TestScoreService_SetIndividualScore_MalformedInputIsZero(t *testing.T) {
	svc, classRepo, _, _ := setupTestScoreService()
	seedClass(classRepo, "c1", 3, "3-1")

	// 잘못된 숫자 입력은 거부하지 않고 0으로 저장한다
	result, err := svc.SetIndividualScore(context.Background(), "c1", "e1", &dto.SetIndividualScoreRequest{
		StudentID: "s1",
		Score:     "스물다섯",
	}, "teacher-001")
	if err != nil {
		t.Fatalf("잘못된 입력도 거부하면 안 됨: %v", err)
	}
	if got := result.Results["e1"].StudentScores["s1"]; got != 0 {
		t.Errorf("점수 = %d, 기대값 0", got)
	}
}

func TestScoreService_SetIndividualScore_NonParticipantExcluded(t *testing.T) {
	svc, classRepo, _, _ := setupTestScoreService()
	seedClass(classRepo, "c1", 3, "3-1")

	svc.SetParticipants(context.Background(), "c1", "e1", &dto.SetParticipantsRequest{
		ParticipantIDs: []string{"s1"},
	}, "teacher-001")

	// 비참가자 s3 의 점수도 저장은 되지만 합계에는 안 들어간다
	result, err := svc.SetIndividualScore(context.Background(), "c1", "e1", &dto.SetIndividualScoreRequest{
		StudentID: "s3",
		Score:     "40",
	}, "teacher-001")
	if err != nil {
		t.Fatalf("SetIndividualScore 성공해야 함: %v", err)
	}

	res := result.Results["e1"]
	if res.StudentScores["s3"] != 40 {
		t.Errorf("비참가자 점수도 저장해야 함: %d", res.StudentScores["s3"])
	}
	if res.Score != 0 {
		t.Errorf("합계 = %d, 기대값 0 (비참가자 제외)", res.Score)
	}
}

func TestScoreService_SetIndividualScore_ClassNotFound(t *testing.T) {
	svc, _, _, _ := setupTestScoreService()

	_, err := svc.SetIndividualScore(context.Background(), "no-such", "e1", &dto.SetIndividualScoreRequest{
		StudentID: "s1",
		Score:     "10",
	}, "teacher-001")
	if !errors.Is(err, ErrClassNotFound) {
		t.Errorf("기대 ErrClassNotFound, 실제: %v", err)
	}
}

// ── SetTeamScore 테스트 ──

func TestScoreService_SetTeamScore_Success(t *testing.T) {
	svc, classRepo, recordRepo, _ := setupTestScoreService()
	class := seedClass(classRepo, "c1", 3, "3-1")

	class.Results["e2"] = model.ClassResult{
		Teams: []model.Team{
			{ID: "t1", Name: "팀 1", MemberIDs: []string{"s1", "s2"}},
			{ID: "t2", Name: "팀 2", MemberIDs: []string{"s3"}},
		},
	}
	classRepo.Save(context.Background(), class)

	result, err := svc.SetTeamScore(context.Background(), "c1", "e2", &dto.SetTeamScoreRequest{
		TeamID: "t1",
		Score:  "18",
	}, "teacher-001")
	if err != nil {
		t.Fatalf("SetTeamScore 성공해야 함: %v", err)
	}

	res := result.Results["e2"]
	if res.Teams[0].Score != 18 {
		t.Errorf("팀 점수 = %d, 기대값 18", res.Teams[0].Score)
	}
	if res.Score != 18 {
		t.Errorf("공식 합계 = %d, 기대값 18", res.Score)
	}

	// 팀원 2명 각각 기록이 쌓인다
	r1, _ := recordRepo.ListByStudent(context.Background(), "s1")
	r2, _ := recordRepo.ListByStudent(context.Background(), "s2")
	if len(r1) != 1 || len(r2) != 1 {
		t.Errorf("팀원별 기록 수 = %d, %d, 기대값 1, 1", len(r1), len(r2))
	}
	if len(r1) == 1 && (r1[0].TeamID == nil || *r1[0].TeamID != "t1") {
		t.Errorf("기록에 팀 id 가 있어야 함: %+v", r1[0])
	}
}

func TestScoreService_SetTeamScore_UnknownTeamIsNoop(t *testing.T) {
	svc, classRepo, _, _ := setupTestScoreService()
	class := seedClass(classRepo, "c1", 3, "3-1")
	class.Results["e2"] = model.ClassResult{
		Teams: []model.Team{{ID: "t1", Score: 5}},
		Score: 5,
	}
	classRepo.Save(context.Background(), class)

	// 없는 팀 id 는 오류가 아니라 무시다
	result, err := svc.SetTeamScore(context.Background(), "c1", "e2", &dto.SetTeamScoreRequest{
		TeamID: "ghost",
		Score:  "99",
	}, "teacher-001")
	if err != nil {
		t.Fatalf("없는 팀은 no-op 이어야 함: %v", err)
	}
	if result.Results["e2"].Score != 5 {
		t.Errorf("합계가 변하면 안 됨: %d", result.Results["e2"].Score)
	}
}

// ── SetParticipants 테스트 ──

func TestScoreService_SetParticipants_PreservesScores(t *testing.T) {
	svc, classRepo, _, _ := setupTestScoreService()
	seedClass(classRepo, "c1", 3, "3-1")

	svc.SetParticipants(context.Background(), "c1", "e1", &dto.SetParticipantsRequest{
		ParticipantIDs: []string{"s1", "s2"},
	}, "teacher-001")
	svc.SetIndividualScore(context.Background(), "c1", "e1", &dto.SetIndividualScoreRequest{
		StudentID: "s2", Score: "30",
	}, "teacher-001")

	// s2 제외 → 합계에서 빠짐
	result, _ := svc.SetParticipants(context.Background(), "c1", "e1", &dto.SetParticipantsRequest{
		ParticipantIDs: []string{"s1"},
	}, "teacher-001")
	if result.Results["e1"].Score != 0 {
		t.Errorf("제외 후 합계 = %d, 기대값 0", result.Results["e1"].Score)
	}

	// 재추가 → 마지막 점수 복원
	result, _ = svc.SetParticipants(context.Background(), "c1", "e1", &dto.SetParticipantsRequest{
		ParticipantIDs: []string{"s1", "s2"},
	}, "teacher-001")
	if result.Results["e1"].Score != 30 {
		t.Errorf("재추가 후 합계 = %d, 기대값 30", result.Results["e1"].Score)
	}
}

// ── Standings 테스트 ──

func TestScoreService_Standings(t *testing.T) {
	svc, classRepo, _, configRepo := setupTestScoreService()

	c1 := seedClass(classRepo, "c1", 3, "3-1")
	c1.Results["e1"] = model.ClassResult{Score: 40}
	c1.Results["e9"] = model.ClassResult{Score: 500} // 비활성 종목
	classRepo.Save(context.Background(), c1)

	c2 := seedClass(classRepo, "c2", 3, "3-2")
	c2.Results["e1"] = model.ClassResult{Score: 70}
	classRepo.Save(context.Background(), c2)

	configRepo.Save(context.Background(), &model.GradeConfig{
		Grade:    3,
		Migrated: true,
		DateEvents: model.DateEventMap{
			"2026-03-14": {"e1": {Selected: true}},
		},
	})

	standings, err := svc.Standings(context.Background(), 3, "2026-03-14")
	if err != nil {
		t.Fatalf("Standings 성공해야 함: %v", err)
	}

	if len(standings) != 2 {
		t.Fatalf("순위 항목 수 = %d, 기대값 2", len(standings))
	}
	if standings[0].ClassID != "c2" || standings[0].Total != 70 {
		t.Errorf("1위 = %+v, 기대 c2/70", standings[0])
	}
	if standings[1].ClassID != "c1" || standings[1].Total != 40 {
		t.Errorf("2위 = %+v, 기대 c1/40 (비활성 종목 제외)", standings[1])
	}
}

func TestScoreService_Standings_NoConfig(t *testing.T) {
	svc, classRepo, _, _ := setupTestScoreService()
	seedClass(classRepo, "3", 3, "3-1")

	// 설정이 없으면 활성 종목 없음 → 전원 0점
	standings, err := svc.Standings(context.Background(), 3, "2026-03-14")
	if err != nil {
		t.Fatalf("설정 없음은 오류가 아님: %v", err)
	}
	for _, st := range standings {
		if st.Total != 0 {
			t.Errorf("활성 종목 없으면 총점 0이어야 함: %+v", st)
		}
	}
}

// ── ResetEventResults 테스트 ──

func TestScoreService_ResetEventResults(t *testing.T) {
	svc, classRepo, recordRepo, _ := setupTestScoreService()
	seedClass(classRepo, "c1", 3, "3-1")

	svc.SetParticipants(context.Background(), "c1", "e1", &dto.SetParticipantsRequest{
		ParticipantIDs: []string{"s1"},
	}, "teacher-001")
	svc.SetIndividualScore(context.Background(), "c1", "e1", &dto.SetIndividualScoreRequest{
		StudentID: "s1", Score: "10",
	}, "teacher-001")

	if err := svc.ResetEventResults(context.Background(), "c1", "e1", "teacher-001"); err != nil {
		t.Fatalf("ResetEventResults 성공해야 함: %v", err)
	}

	class, _ := classRepo.GetByID(context.Background(), "c1")
	if _, ok := class.Results["e1"]; ok {
		t.Error("결과가 삭제되어야 함")
	}
	records, _ := recordRepo.ListByClassEvent(context.Background(), "c1", "e1")
	if len(records) != 0 {
		t.Errorf("기록도 삭제되어야 함: %d건 남음", len(records))
	}
}
