// Package fetcher HTTP 요청 실행 계층을 제공하는 패키지입니다.
//
// Fetcher 인터페이스를 중심으로 실제 전송(HTTPFetcher)과 로깅(LoggingFetcher) 등의
// 기능을 데코레이터 패턴으로 조합할 수 있도록 설계되었습니다.
package fetcher

import (
	"context"
	"net/http"
)

// component Fetcher 로깅용 컴포넌트 이름
const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 핵심 인터페이스입니다.
//
// 구현 시 주의사항:
//   - 반환된 응답 객체의 Body는 반드시 호출자가 닫아야 합니다.
//   - Context 취소 시 즉시 요청을 중단하고 적절한 에러를 반환해야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Post 지정된 URL로 본문 없는 HTTP POST 요청을 전송하는 헬퍼 함수입니다.
//
// Fetcher 인터페이스의 모든 구현체에서 공통으로 사용할 수 있으며,
// http.Request 객체를 직접 생성하는 번거로움을 줄여줍니다.
// 반환된 응답 객체의 Body는 호출자가 반드시 닫아야 합니다.
func Post(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	return f.Do(req)
}
