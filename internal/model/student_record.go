package model

import (
	"time"

	"gorm.io/datatypes"
)

// RecordMode 기록 생성 맥락
type RecordMode string

const (
	// RecordModeCompetition 대회 본선 기록
	RecordModeCompetition RecordMode = "competition"
	// RecordModePractice 연습 기록
	RecordModePractice RecordMode = "practice"
)

// Valid 정의된 모드인지 확인
func (m RecordMode) Valid() bool {
	return m == RecordModeCompetition || m == RecordModePractice
}

// StudentRecord 학생별 기록 테이블 — 대응 student_records
// 저장 시점에 학급 결과에서 비정규화해 떠낸 추가 전용 사실 행.
// 현재 순위의 원본이 아니라 성장 추적 조회 전용이다.
type StudentRecord struct {
	RecordID  string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"record_id"`
	StudentID string         `gorm:"type:varchar(64);not null;index:idx_student_records_student" json:"student_id"`
	EventID   string         `gorm:"type:uuid;not null"                             json:"event_id"`
	ClassID   string         `gorm:"type:uuid;not null"                             json:"class_id"`
	Grade     int            `gorm:"type:smallint;not null"                         json:"grade"`
	Score     int            `gorm:"not null;default:0"                             json:"score"`
	Date      datatypes.Date `gorm:"type:date;not null"                             json:"date"`
	Mode      RecordMode     `gorm:"type:varchar(20);not null;default:'competition'" json:"mode"`
	TeamID    *string        `gorm:"type:varchar(64)"                               json:"team_id,omitempty"`
	TeamScore *int           `json:"team_score,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 테이블명 지정
func (StudentRecord) TableName() string { return "student_records" }
