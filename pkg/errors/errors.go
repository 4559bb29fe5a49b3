package errors

import "errors"

// ErrStreamUnsupported 응답 스트리밍(SSE)을 지원하지 않는 연결
var ErrStreamUnsupported = errors.New("이 연결은 실시간 스트리밍을 지원하지 않습니다")
