package model

import "database/sql/driver"

// EventSetting 종목 선택 상태와 목표 참가 인원
type EventSetting struct {
	Selected           bool `json:"selected"`
	TargetParticipants int  `json:"target_participants"`
}

// EventSettingMap 종목 ID → 선택 설정
type EventSettingMap map[string]EventSetting

// Scan GORM Scanner 구현
func (m *EventSettingMap) Scan(src interface{}) error { return scanJSON(src, m) }

// Value GORM Valuer 구현
func (m EventSettingMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return valueJSON(m)
}

// DateEventMap 날짜(YYYY-MM-DD) → 종목 선택 맵
type DateEventMap map[string]EventSettingMap

// Scan GORM Scanner 구현
func (m *DateEventMap) Scan(src interface{}) error { return scanJSON(src, m) }

// Value GORM Valuer 구현
func (m DateEventMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return valueJSON(m)
}

// CustomEventMap 날짜 → 그 날짜에 만든 복사 종목 목록
// 복사 종목은 해당 날짜 밖에서는 존재하지 않으므로 전역 테이블이 아니라
// 학년 설정 문서 안에 내장한다.
type CustomEventMap map[string][]EventInfo

// Scan GORM Scanner 구현
func (m *CustomEventMap) Scan(src interface{}) error { return scanJSON(src, m) }

// Value GORM Valuer 구현
func (m CustomEventMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return valueJSON(m)
}

// GradeConfig 학년별 대회 설정 문서 — 대응 grade_configs (학년당 1행)
// Events 는 구버전(날짜 무관) 선택 맵이며 DateEvents 가 이를 대체한다.
// Migrated 가 true 이면 구버전 맵은 더 이상 권위가 없다.
type GradeConfig struct {
	ConfigID     string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"config_id"`
	Grade        int             `gorm:"type:smallint;not null;uniqueIndex"             json:"grade"`
	Events       EventSettingMap `gorm:"type:jsonb;not null;default:'{}'"               json:"events"`
	DateEvents   DateEventMap    `gorm:"type:jsonb;not null;default:'{}'"               json:"date_events"`
	CustomEvents CustomEventMap  `gorm:"type:jsonb;not null;default:'{}'"               json:"custom_events"`
	Migrated     bool            `gorm:"not null;default:false"                         json:"migrated"`
	BaseModel
}

// TableName 테이블명 지정
func (GradeConfig) TableName() string { return "grade_configs" }

// CustomEventFor 해당 날짜의 복사 종목을 찾는다. 없으면 nil
func (g *GradeConfig) CustomEventFor(date, eventID string) *EventInfo {
	for i := range g.CustomEvents[date] {
		if g.CustomEvents[date][i].ID == eventID {
			return &g.CustomEvents[date][i]
		}
	}
	return nil
}
