package service

import (
	"testing"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// ── ParseScore 테스트 ──

func TestParseScore(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{" 17 ", 17},
		{"0", 0},
		{"-5", 0},    // 음수는 0으로 보정
		{"abc", 0},   // 숫자가 아니면 0
		{"", 0},      // 빈 입력도 0
		{"12.5", 0},  // 소수는 정수 파싱 실패 → 0
		{"１２３", 0},   // 전각 숫자도 파싱 실패 → 0
	}
	for _, tc := range cases {
		if got := ParseScore(tc.raw); got != tc.want {
			t.Errorf("ParseScore(%q) = %d, 기대값 %d", tc.raw, got, tc.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(-1); got != 0 {
		t.Errorf("음수 보정 실패: %d", got)
	}
	if got := ClampScore(99); got != 99 {
		t.Errorf("양수는 그대로여야 함: %d", got)
	}
}

// ── 개인전 집계 테스트 ──

func TestRecalcIndividual_ParticipantsOnly(t *testing.T) {
	res := model.ClassResult{
		ParticipantIDs: []string{"s1", "s2"},
		StudentScores:  map[string]int{"s1": 10, "s2": 20, "s3": 99},
	}

	recalcIndividual(&res)

	// s3 은 참가자가 아니므로 합계에서 제외된다
	if res.Score != 30 {
		t.Errorf("합계 = %d, 기대값 30 (비참가자 점수 제외)", res.Score)
	}
	// 점수 자체는 맵에 남아 있어야 한다
	if res.StudentScores["s3"] != 99 {
		t.Error("비참가자의 점수가 맵에서 사라짐")
	}
}

func TestRecalcIndividual_MissingScoreIsZero(t *testing.T) {
	res := model.ClassResult{
		ParticipantIDs: []string{"s1", "s2"},
		StudentScores:  map[string]int{"s1": 15},
	}

	recalcIndividual(&res)

	if res.Score != 15 {
		t.Errorf("점수 없는 참가자는 0으로 집계해야 함: %d", res.Score)
	}
}

func TestRecalcIndividual_ParticipantToggleRestoresScore(t *testing.T) {
	res := model.ClassResult{
		ParticipantIDs: []string{"s1", "s2"},
		StudentScores:  map[string]int{"s1": 10, "s2": 20},
	}
	recalcIndividual(&res)
	if res.Score != 30 {
		t.Fatalf("초기 합계 = %d, 기대값 30", res.Score)
	}

	// s2 를 참가자에서 제외
	res.ParticipantIDs = []string{"s1"}
	recalcIndividual(&res)
	if res.Score != 10 {
		t.Errorf("제외 후 합계 = %d, 기대값 10", res.Score)
	}

	// 다시 추가하면 마지막 점수가 복원된다
	res.ParticipantIDs = []string{"s1", "s2"}
	recalcIndividual(&res)
	if res.Score != 30 {
		t.Errorf("재추가 후 합계 = %d, 기대값 30 (점수 복원)", res.Score)
	}
}

// ── 팀전 집계 테스트 ──

func TestRecalcTeams(t *testing.T) {
	res := model.ClassResult{
		Teams: []model.Team{
			{ID: "t1", Score: 12},
			{ID: "t2", Score: 8},
		},
	}
	recalcTeams(&res)
	if res.Score != 20 {
		t.Errorf("팀 합계 = %d, 기대값 20", res.Score)
	}
}

func TestRecalcTeams_Empty(t *testing.T) {
	res := model.ClassResult{Score: 55}
	recalcTeams(&res)
	if res.Score != 0 {
		t.Errorf("팀이 없으면 합계는 0이어야 함: %d", res.Score)
	}
}

// ── 학급 총점 테스트 ──

func TestComputeClassTotal_ActiveEventsOnly(t *testing.T) {
	class := &model.ClassTeam{
		Results: model.ResultMap{
			"e1": {Score: 30},
			"e2": {Score: 20},
			"e3": {Score: 50}, // 비활성 종목
		},
	}

	total := ComputeClassTotal(class, []string{"e1", "e2"})
	if total != 50 {
		t.Errorf("총점 = %d, 기대값 50 (활성 종목만)", total)
	}
}

func TestComputeClassTotal_UsesOfficialScoreOnly(t *testing.T) {
	// 공식 합계와 부분 점수가 어긋나도 공식 합계가 기준이다
	class := &model.ClassTeam{
		Results: model.ResultMap{
			"e1": {
				Score:          100,
				ParticipantIDs: []string{"s1"},
				StudentScores:  map[string]int{"s1": 1},
			},
		},
	}

	total := ComputeClassTotal(class, []string{"e1"})
	if total != 100 {
		t.Errorf("총점 = %d, 기대값 100 (재계산 금지)", total)
	}
}

func TestComputeClassTotal_MissingResultIsZero(t *testing.T) {
	class := &model.ClassTeam{Results: model.ResultMap{}}
	if total := ComputeClassTotal(class, []string{"e1", "e2"}); total != 0 {
		t.Errorf("결과 없는 종목은 0이어야 함: %d", total)
	}
}

// ── 순위 테스트 ──

func TestRankClasses_DescendingWithStableTies(t *testing.T) {
	classes := []model.ClassTeam{
		{ClassID: "c1", Name: "3-1", Results: model.ResultMap{"e1": {Score: 10}}},
		{ClassID: "c2", Name: "3-2", Results: model.ResultMap{"e1": {Score: 30}}},
		{ClassID: "c3", Name: "3-3", Results: model.ResultMap{"e1": {Score: 10}}},
	}

	standings := rankClasses(classes, []string{"e1"})

	if len(standings) != 3 {
		t.Fatalf("순위 항목 수 = %d, 기대값 3", len(standings))
	}
	if standings[0].ClassID != "c2" || standings[0].Rank != 1 {
		t.Errorf("1위는 c2 여야 함: %+v", standings[0])
	}
	// 동점(c1, c3)은 입력 순서를 유지해야 한다
	if standings[1].ClassID != "c1" || standings[2].ClassID != "c3" {
		t.Errorf("동점은 입력 순서를 유지해야 함: %s, %s", standings[1].ClassID, standings[2].ClassID)
	}
	if standings[1].Rank != 2 || standings[2].Rank != 3 {
		t.Errorf("순위 번호가 순서대로여야 함: %d, %d", standings[1].Rank, standings[2].Rank)
	}
}

func TestRankClasses_Empty(t *testing.T) {
	standings := rankClasses(nil, []string{"e1"})
	if len(standings) != 0 {
		t.Errorf("학급이 없으면 빈 순위여야 함: %d", len(standings))
	}
}
