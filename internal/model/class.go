package model

import "database/sql/driver"

// Student 학급 명단의 학생 항목 (class_teams.students JSONB 내장)
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccessCode string `json:"access_code,omitempty"` // 4자리 공개 조회 토큰, 발급 후 불변
}

// Team PAIR/TEAM 종목의 팀 항목 (ClassResult.teams 내장)
// 한 학생이 같은 종목의 여러 팀에 속하는 것을 막지 않는다.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
	Score     int      `json:"score"`
}

// ClassResult 학급의 종목별 결과 (class_teams.results JSONB 의 값)
// Score 는 항상 미리 집계된 공식 합계이며 조회 시점에 재계산하지 않는다.
type ClassResult struct {
	Score              int            `json:"score"`
	Date               string         `json:"date,omitempty"` // YYYY-MM-DD
	ParticipantIDs     []string       `json:"participant_ids,omitempty"`
	StudentScores      map[string]int `json:"student_scores,omitempty"`
	Teams              []Team         `json:"teams,omitempty"`
	TeamParticipantIDs []string       `json:"team_participant_ids,omitempty"`
}

// StudentList students JSONB 컬럼 타입
type StudentList []Student

// Scan GORM Scanner 구현
func (l *StudentList) Scan(src interface{}) error { return scanJSON(src, l) }

// Value GORM Valuer 구현
func (l StudentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return valueJSON(l)
}

// ResultMap results JSONB 컬럼 타입 — 종목 ID → 결과
type ResultMap map[string]ClassResult

// Scan GORM Scanner 구현
func (m *ResultMap) Scan(src interface{}) error { return scanJSON(src, m) }

// Value GORM Valuer 구현
func (m ResultMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return valueJSON(m)
}

// ClassTeam 학급 문서 테이블 — 대응 class_teams
// 명단과 결과를 문서째 싣고 저장도 문서째 한다 (마지막 저장이 전체를 덮어씀).
type ClassTeam struct {
	ClassID  string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Grade    int         `gorm:"type:smallint;not null"                         json:"grade"` // 1~6
	Name     string      `gorm:"type:varchar(100);not null"                     json:"name"`  // 예: "3-1"
	Students StudentList `gorm:"type:jsonb;not null;default:'[]'"               json:"students"`
	Results  ResultMap   `gorm:"type:jsonb;not null;default:'{}'"               json:"results"`
	SoftDeleteModel
}

// TableName 테이블명 지정
func (ClassTeam) TableName() string { return "class_teams" }

// FindStudent 명단에서 학생을 찾는다. 없으면 nil
func (c *ClassTeam) FindStudent(studentID string) *Student {
	for i := range c.Students {
		if c.Students[i].ID == studentID {
			return &c.Students[i]
		}
	}
	return nil
}
