package dto

// ── 종목 모듈 DTO ──

// CreateEventRequest 종목 템플릿 생성 요청
type CreateEventRequest struct {
	Name                   string `json:"name"                     binding:"required,min=1,max=100"`
	Type                   string `json:"type"                     binding:"required,oneof=INDIVIDUAL PAIR TEAM"`
	DefaultTimeLimit       int    `json:"default_time_limit"       binding:"omitempty,min=1,max=3600"`
	DefaultMaxParticipants int    `json:"default_max_participants" binding:"omitempty,min=1,max=100"`
	Description            string `json:"description"              binding:"omitempty,max=500"`
}

// UpdateEventRequest 종목 템플릿 수정 요청
type UpdateEventRequest struct {
	Name                   *string `json:"name"                     binding:"omitempty,min=1,max=100"`
	DefaultTimeLimit       *int    `json:"default_time_limit"       binding:"omitempty,min=1,max=3600"`
	DefaultMaxParticipants *int    `json:"default_max_participants" binding:"omitempty,min=1,max=100"`
	Description            *string `json:"description"              binding:"omitempty,max=500"`
}

// EventResponse 종목 정보 응답
type EventResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Type                   string `json:"type"`
	DefaultTimeLimit       int    `json:"default_time_limit"`
	DefaultMaxParticipants int    `json:"default_max_participants"`
	Description            string `json:"description,omitempty"`
	IsCustom               bool   `json:"is_custom"`             // 날짜별 복사 종목 여부
	CustomDate             string `json:"custom_date,omitempty"` // 복사 종목이 속한 날짜
}
