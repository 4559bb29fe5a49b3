package dto

// ── 학급 모듈 DTO ──

// StudentInput 학급 생성/명단 수정 시의 학생 항목
type StudentInput struct {
	ID   string `json:"id"   binding:"omitempty,max=64"`
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateClassRequest 학급 생성 요청
type CreateClassRequest struct {
	Grade    int            `json:"grade"    binding:"required,min=1,max=6"`
	Name     string         `json:"name"     binding:"required,min=1,max=100"`
	Students []StudentInput `json:"students" binding:"required,min=1,dive"`
}

// UpdateRosterRequest 학급 명단 수정 요청
type UpdateRosterRequest struct {
	Students []StudentInput `json:"students" binding:"required,min=1,dive"`
}

// StudentResponse 학생 항목 응답
type StudentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccessCode string `json:"access_code,omitempty"`
}

// TeamResponse 팀 항목 응답
type TeamResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
	Score     int      `json:"score"`
}

// ClassResultResponse 학급의 종목별 결과 응답
type ClassResultResponse struct {
	Score              int            `json:"score"`
	Date               string         `json:"date,omitempty"`
	ParticipantIDs     []string       `json:"participant_ids,omitempty"`
	StudentScores      map[string]int `json:"student_scores,omitempty"`
	Teams              []TeamResponse `json:"teams,omitempty"`
	TeamParticipantIDs []string       `json:"team_participant_ids,omitempty"`
}

// ClassResponse 학급 문서 응답
type ClassResponse struct {
	ID        string                         `json:"id"`
	Grade     int                            `json:"grade"`
	Name      string                         `json:"name"`
	Students  []StudentResponse              `json:"students"`
	Results   map[string]ClassResultResponse `json:"results"`
	UpdatedAt string                         `json:"updated_at"`
}
