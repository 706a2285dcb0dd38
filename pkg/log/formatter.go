package log

// silentFormatter 아무것도 출력하지 않는 Formatter입니다.
//
// Logrus는 출력 대상이 io.Discard라도 포맷팅을 수행하므로, 불필요한 연산을 막기 위해
// 기본 출력 경로에는 이 포맷터를 설정하고 실제 포맷팅은 Hook에서 한 번만 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(entry *Entry) ([]byte, error) {
	return nil, nil
}
