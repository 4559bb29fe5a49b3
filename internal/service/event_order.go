package service

// 종목 표시 순서 순수 함수 모음.
// 순서는 선택된 종목 집합 위에 얹히는 휘발성 상태다. 계약:
//   - 새로 활성화된 종목은 항상 맨 뒤에 붙는다 (기존 순서를 섞지 않음)
//   - 비활성화된 종목은 제거하되 나머지의 상대 순서는 유지한다

// reconcileOrder 이전 순서를 현재 활성 집합에 맞춘다
// prev 에 없던 활성 종목은 active 의 순서대로 뒤에 덧붙인다
func reconcileOrder(prev []string, active []string) []string {
	activeSet := make(map[string]bool, len(active))
	for _, id := range active {
		activeSet[id] = true
	}

	order := make([]string, 0, len(active))
	seen := make(map[string]bool, len(active))
	for _, id := range prev {
		if activeSet[id] && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, id := range active {
		if !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	return order
}

// swapPositions 두 위치를 교환한 새 순서를 반환한다. 범위를 벗어나면 그대로 반환
func swapPositions(order []string, from, to int) []string {
	if from < 0 || to < 0 || from >= len(order) || to >= len(order) {
		return order
	}
	swapped := make([]string, len(order))
	copy(swapped, order)
	swapped[from], swapped[to] = swapped[to], swapped[from]
	return swapped
}
