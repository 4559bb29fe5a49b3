package model

import "time"

// AccessCode 접속 코드 조회 투영 테이블 — 대응 access_codes
// 학생의 학급을 몰라도 코드만으로 성장 기록을 조회할 수 있도록
// 코드 자체를 키로 하는 별도 투영을 둔다. 발급 후 불변.
type AccessCode struct {
	Code        string    `gorm:"type:varchar(4);primaryKey"         json:"code"`
	StudentID   string    `gorm:"type:varchar(64);not null;index"    json:"student_id"`
	StudentName string    `gorm:"type:varchar(100);not null"         json:"student_name"`
	ClassID     string    `gorm:"type:uuid;not null"                 json:"class_id"`
	Grade       int       `gorm:"type:smallint;not null"             json:"grade"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 테이블명 지정
func (AccessCode) TableName() string { return "access_codes" }
