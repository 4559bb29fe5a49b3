package dto

// ── 학년 설정 모듈 DTO ──

// EventSettingResponse 종목 선택 설정 응답
type EventSettingResponse struct {
	Selected           bool `json:"selected"`
	TargetParticipants int  `json:"target_participants"`
}

// EffectiveConfigResponse (학년, 날짜)로 해석된 유효 설정
type EffectiveConfigResponse struct {
	Grade        int                             `json:"grade"`
	Date         string                          `json:"date"`
	Events       map[string]EventSettingResponse `json:"events"`        // 종목 ID → 설정
	CustomEvents []EventResponse                 `json:"custom_events"` // 그 날짜의 복사 종목
	ActiveOrder  []string                        `json:"active_order"`  // 표시 순서 (선택된 종목 ID)
}

// SelectEventRequest 종목 선택/해제 요청
type SelectEventRequest struct {
	Date               string `json:"date"                binding:"required,datetime=2006-01-02"`
	Selected           bool   `json:"selected"`
	TargetParticipants int    `json:"target_participants" binding:"omitempty,min=0,max=100"`
}

// CopyEventRequest 종목 복사 요청
type CopyEventRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

// ReorderRequest 표시 순서 변경 요청 (두 위치 교환)
type ReorderRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	From int    `json:"from" binding:"min=0"`
	To   int    `json:"to"   binding:"min=0"`
}
