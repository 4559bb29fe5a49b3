package model

// EventType 종목 채점 방식 (닫힌 집합)
type EventType string

const (
	// EventTypeIndividual 개인전: 참가자별 횟수 합산
	EventTypeIndividual EventType = "INDIVIDUAL"
	// EventTypePair 2인 1조: 팀 점수 합산 (팀 인원은 관례상 2명)
	EventTypePair EventType = "PAIR"
	// EventTypeTeam 단체전: 팀 점수 합산
	EventTypeTeam EventType = "TEAM"
)

// Valid 정의된 채점 방식인지 확인
func (t EventType) Valid() bool {
	switch t {
	case EventTypeIndividual, EventTypePair, EventTypeTeam:
		return true
	}
	return false
}

// TeamBased 팀 점수로 집계하는 방식인지 확인
func (t EventType) TeamBased() bool {
	return t == EventTypePair || t == EventTypeTeam
}

// CompetitionEvent 종목 템플릿 테이블 — 대응 competition_events
// 전 학년/학급이 공유하는 드릴 정의. 삭제해도 학급 결과는 연쇄 삭제하지 않는다
// (과거 결과에 매달린 참조가 남는 것은 수용된 트레이드오프).
type CompetitionEvent struct {
	EventID                string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Name                   string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Type                   EventType `gorm:"type:varchar(20);not null"                      json:"type"`
	DefaultTimeLimit       int       `gorm:"not null;default:60"                            json:"default_time_limit"` // 초
	DefaultMaxParticipants int       `gorm:"not null;default:8"                             json:"default_max_participants"`
	Description            string    `gorm:"type:varchar(500);not null;default:''"          json:"description"`
	SoftDeleteModel
}

// TableName 테이블명 지정
func (CompetitionEvent) TableName() string { return "competition_events" }

// EventInfo 종목 정보의 문서 내장형 (학년 설정 JSONB 의 복사 종목 목록에 사용)
type EventInfo struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Type                   EventType `json:"type"`
	DefaultTimeLimit       int       `json:"default_time_limit"`
	DefaultMaxParticipants int       `json:"default_max_participants"`
	Description            string    `json:"description,omitempty"`
}

// Info 테이블 행을 문서 내장형으로 변환
func (e *CompetitionEvent) Info() EventInfo {
	return EventInfo{
		ID:                     e.EventID,
		Name:                   e.Name,
		Type:                   e.Type,
		DefaultTimeLimit:       e.DefaultTimeLimit,
		DefaultMaxParticipants: e.DefaultMaxParticipants,
		Description:            e.Description,
	}
}
