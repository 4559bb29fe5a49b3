package dto

// ── 실시간 피드 모듈 DTO ──

// LiveSnapshot 실시간 피드의 스냅샷 페이로드
// 증분이 아니라 전체 교체용이다: 클라이언트는 수신 즉시 화면 상태를 통째로 갈아끼운다
type LiveSnapshot struct {
	Grade     int                `json:"grade"`
	Date      string             `json:"date"`
	Classes   []ClassResponse    `json:"classes"`
	Standings []StandingResponse `json:"standings"`
	UpdatedAt string             `json:"updated_at"`
}
