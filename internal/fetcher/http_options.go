package fetcher

import (
	"net/http"
	"time"
)

// optionConfig HTTPFetcher 생성 시 적용할 설정값을 담는 구조체입니다.
type optionConfig struct {
	// timeout HTTP 요청 전체(요청 전송부터 응답 본문을 모두 읽을 때까지)에 대한 타임아웃입니다.
	// 0이면 타임아웃을 적용하지 않습니다. (http.Client 기본 동작)
	timeout time.Duration

	// transport 커스텀 http.RoundTripper입니다. nil이면 http.DefaultTransport를 사용합니다.
	transport http.RoundTripper

	// client 완전히 구성된 http.Client를 직접 주입할 때 사용합니다.
	// 설정된 경우 timeout/transport 옵션보다 우선합니다.
	client *http.Client
}

// Option HTTPFetcher의 동작을 제어하는 함수형 옵션입니다.
type Option func(*optionConfig)

// applyOptions 전달된 옵션들을 순서대로 적용한 설정값을 반환합니다.
func applyOptions(opts []Option) *optionConfig {
	config := &optionConfig{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// WithTimeout HTTP 요청 전체에 대한 타임아웃을 설정합니다.
// 음수는 타임아웃 없음(0)으로 보정합니다.
func WithTimeout(timeout time.Duration) Option {
	return func(config *optionConfig) {
		if timeout < 0 {
			timeout = 0
		}
		config.timeout = timeout
	}
}

// WithTransport 커스텀 http.RoundTripper를 설정합니다. (테스트 또는 프록시 구성용)
func WithTransport(transport http.RoundTripper) Option {
	return func(config *optionConfig) {
		config.transport = transport
	}
}

// WithHTTPClient 완전히 구성된 http.Client를 직접 주입합니다.
// 이 옵션이 설정되면 WithTimeout/WithTransport 옵션은 무시됩니다.
func WithHTTPClient(client *http.Client) Option {
	return func(config *optionConfig) {
		config.client = client
	}
}
