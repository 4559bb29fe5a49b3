package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/geunssam/jumprope-competition-manager-sub000/internal/dto"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/model"
)

// 점수 집계 순수 함수 모음.
// 모든 함수는 동기·재진입 가능하며 누락된 맵 항목은 0으로 취급한다 (절대 실패하지 않음).

// ParseScore 사용자 입력을 점수로 파싱한다
// 숫자가 아닌 입력은 0, 음수는 0으로 보정한다 (횟수는 음수가 될 수 없음)
func ParseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return ClampScore(n)
}

// ClampScore 점수를 0 이상으로 보정한다 (감소 버튼이 0 아래로 내려가지 않도록)
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// recalcIndividual 개인전 결과의 공식 합계를 재계산한다
// 참가자 목록에 있는 학생의 점수만 합산한다. 비참가자의 점수는 맵에 남겨두되
// 합계에서는 제외한다 (참가 여부 전환 시 점수를 잃지 않기 위한 설계).
func recalcIndividual(res *model.ClassResult) {
	total := 0
	for _, id := range res.ParticipantIDs {
		total += res.StudentScores[id]
	}
	res.Score = total
}

// recalcTeams 팀전(PAIR/TEAM) 결과의 공식 합계를 재계산한다
func recalcTeams(res *model.ClassResult) {
	total := 0
	for i := range res.Teams {
		total += res.Teams[i].Score
	}
	res.Score = total
}

// ComputeClassTotal 활성 종목들에 대한 학급 총점
// 미리 집계된 결과의 Score 만 더한다 — 원시 점수에서 재계산하지 않는다
// (부분 점수와 합계가 어긋나더라도 공식 합계가 기준). 결과가 없는 종목은 0.
func ComputeClassTotal(class *model.ClassTeam, activeEventIDs []string) int {
	total := 0
	for _, id := range activeEventIDs {
		if res, ok := class.Results[id]; ok {
			total += res.Score
		}
	}
	return total
}

// rankClasses 활성 종목 총점 내림차순으로 학급 순위를 만든다
// 동점은 깨지 않는다: 안정 정렬이 입력 순서를 유지한다
func rankClasses(classes []model.ClassTeam, activeEventIDs []string) []dto.StandingResponse {
	totals := make([]int, len(classes))
	for i := range classes {
		totals[i] = ComputeClassTotal(&classes[i], activeEventIDs)
	}

	idx := make([]int, len(classes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return totals[idx[a]] > totals[idx[b]]
	})

	standings := make([]dto.StandingResponse, 0, len(classes))
	for rank, i := range idx {
		standings = append(standings, dto.StandingResponse{
			Rank:    rank + 1,
			ClassID: classes[i].ClassID,
			Name:    classes[i].Name,
			Total:   totals[i],
		})
	}
	return standings
}
