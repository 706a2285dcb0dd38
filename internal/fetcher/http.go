package fetcher

import (
	"net/http"
)

// HTTPFetcher net/http 기반의 실제 네트워크 I/O를 담당하는 Fetcher 구현체입니다.
//
// 별도의 타임아웃을 강제하지 않으며, 타임아웃 제어는 옵션(WithTimeout) 또는
// 호출자가 전달하는 Context에 위임합니다.
type HTTPFetcher struct {
	client *http.Client
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 새로운 HTTPFetcher 인스턴스를 생성합니다.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	config := applyOptions(opts)

	client := config.client
	if client == nil {
		client = &http.Client{
			Timeout:   config.timeout,
			Transport: config.transport,
		}
	}

	return &HTTPFetcher{
		client: client,
	}
}

// Do HTTP 요청을 실행합니다.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return f.client.Do(req)
}
