package dto

// ── 점수 입력 / 순위 모듈 DTO ──

// SetIndividualScoreRequest 개인전 점수 입력 요청
// Score 는 문자열로 받는다: 잘못된 숫자 입력은 0으로 파싱하고 절대 거부하지 않는다
type SetIndividualScoreRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Score     string `json:"score"      binding:"required"`
	Date      string `json:"date"       binding:"omitempty,datetime=2006-01-02"`
	Mode      string `json:"mode"       binding:"omitempty,oneof=competition practice"`
}

// SetTeamScoreRequest 팀 점수 입력 요청
type SetTeamScoreRequest struct {
	TeamID string `json:"team_id" binding:"required"`
	Score  string `json:"score"   binding:"required"`
	Date   string `json:"date"    binding:"omitempty,datetime=2006-01-02"`
	Mode   string `json:"mode"    binding:"omitempty,oneof=competition practice"`
}

// SetParticipantsRequest 개인전 참가자 지정 요청
type SetParticipantsRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
}

// CreateTeamRequest 팀 생성 요청 (PAIR 는 정확히 2명, TEAM 은 1명 이상)
type CreateTeamRequest struct {
	Name      string   `json:"name"       binding:"omitempty,max=100"`
	MemberIDs []string `json:"member_ids" binding:"required,min=1"`
}

// StandingResponse 학급 순위 항목
type StandingResponse struct {
	Rank    int    `json:"rank"`
	ClassID string `json:"class_id"`
	Name    string `json:"name"`
	Total   int    `json:"total"`
}
