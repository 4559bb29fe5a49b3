package dto

// ── 성장 기록 모듈 DTO ──

// RecordResponse 학생 기록 항목 응답
type RecordResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	EventID   string `json:"event_id"`
	ClassID   string `json:"class_id"`
	Grade     int    `json:"grade"`
	Score     int    `json:"score"`
	Date      string `json:"date"`
	Mode      string `json:"mode"`
	TeamID    string `json:"team_id,omitempty"`
	TeamScore *int   `json:"team_score,omitempty"`
}

// CreatePracticeRecordRequest 연습 기록 추가 요청
type CreatePracticeRecordRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	EventID   string `json:"event_id"   binding:"required"`
	ClassID   string `json:"class_id"   binding:"required"`
	Grade     int    `json:"grade"      binding:"required,min=1,max=6"`
	Score     string `json:"score"      binding:"required"`
	Date      string `json:"date"       binding:"required,datetime=2006-01-02"`
}

// LookupResponse 접속 코드 공개 조회 응답
type LookupResponse struct {
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	Grade       int              `json:"grade"`
	ClassID     string           `json:"class_id"`
	Records     []RecordResponse `json:"records"`
}
