package log

import (
	"io"
)

// closer 로깅 시스템이 점유한 모든 리소스(파일 핸들, Hook)의 생명주기를 관리하는 통합 해제 객체입니다.
type closer struct {
	closers []io.Closer
	hook    *hook
}

// Close 로깅 리소스를 안전하게 해제합니다.
//
// Hook을 먼저 종료 상태로 전환하여 이후의 로그가 닫힌 파일에 기록되는 것을 방지한 뒤,
// 파일 핸들을 순차적으로 닫습니다. 개별 Close 실패 시에도 나머지 리소스 해제를 계속 진행합니다.
func (c *closer) Close() error {
	if c.hook != nil {
		c.hook.close()
	}

	var firstErr error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
