package service

import (
	"fmt"
	"regexp"
	"strconv"
)

// 종목 복사 이름 규칙.
// 같은 드릴을 같은 날 다시 돌릴 때 "긴줄넘기" → "긴줄넘기 2" → "긴줄넘기 3" 처럼
// 표시용 접미 번호를 단조 증가시킨다. 중간 복사본이 삭제되거나 순서가 뒤섞여도
// 최대 번호 + 1 을 쓰므로 충돌하지 않는다.

var trailingNumberRe = regexp.MustCompile(`\s+(\d+)$`)

// baseEventName 이름 끝의 " <정수>" 접미를 떼어 기본 이름을 얻는다
func baseEventName(name string) string {
	return trailingNumberRe.ReplaceAllString(name, "")
}

// nextCopyName 기존 이름들을 보고 다음 복사본 이름을 정한다
// 접미 번호 없는 이름은 암묵적 "1"로 센다. 반환값은 "base N" (N = 최대 번호 + 1)
func nextCopyName(base string, existing []string) string {
	related := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `(?:\s+(\d+))?$`)

	max := 1
	for _, name := range existing {
		m := related.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n := 1
		if m[1] != "" {
			if v, err := strconv.Atoi(m[1]); err == nil {
				n = v
			}
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s %d", base, max+1)
}
