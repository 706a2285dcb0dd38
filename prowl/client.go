package prowl

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/darkkaiser/prowl-notify/internal/fetcher"
	applog "github.com/darkkaiser/prowl-notify/pkg/log"
	"github.com/darkkaiser/prowl-notify/pkg/strutil"
)

// component Prowl 클라이언트 로깅용 컴포넌트 이름
const component = "prowl"

// DefaultEndpoint Prowl API 서버의 알림 추가 엔드포인트입니다.
const DefaultEndpoint = "https://prowl.weks.net/publicapi/add"

// maxBodySnippetLength 에러 응답 본문을 APIError에 담을 때의 최대 길이(바이트)입니다.
const maxBodySnippetLength = 4 * 1024

// Client Prowl API 서버로 알림을 전송하는 클라이언트입니다.
//
// 하나의 Client는 여러 고루틴에서 동시에 사용해도 안전하며,
// 여러 건의 알림 전송에 재사용할 수 있습니다.
type Client struct {
	endpoint string
	fetcher  fetcher.Fetcher
}

// clientConfig Client 생성 시 적용할 설정값을 담는 구조체입니다.
type clientConfig struct {
	endpoint string
	timeout  time.Duration
	fetcher  fetcher.Fetcher
}

// ClientOption Client 생성 시의 동작을 제어하는 함수형 옵션입니다.
type ClientOption func(*clientConfig)

// WithEndpoint 기본 엔드포인트 대신 사용할 URL을 지정합니다. (테스트 또는 프록시 구성용)
func WithEndpoint(endpoint string) ClientOption {
	return func(config *clientConfig) {
		config.endpoint = endpoint
	}
}

// WithFetcher HTTP 요청 실행을 담당할 Fetcher를 직접 주입합니다.
// 이 옵션이 설정되면 WithTimeout 옵션은 무시됩니다.
func WithFetcher(f fetcher.Fetcher) ClientOption {
	return func(config *clientConfig) {
		config.fetcher = f
	}
}

// WithTimeout HTTP 요청 전체에 대한 타임아웃을 지정합니다.
//
// 지정하지 않으면 타임아웃을 강제하지 않으며, 타임아웃 제어는
// 호출자가 Send에 전달하는 Context에 위임됩니다.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(config *clientConfig) {
		config.timeout = timeout
	}
}

// NewClient 새로운 Client 인스턴스를 생성합니다.
func NewClient(opts ...ClientOption) *Client {
	config := &clientConfig{
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(config)
	}

	f := config.fetcher
	if f == nil {
		f = fetcher.NewLoggingFetcher(fetcher.NewHTTPFetcher(fetcher.WithTimeout(config.timeout)))
	}

	return &Client{
		endpoint: config.endpoint,
		fetcher:  f,
	}
}

// Send 알림을 Prowl API 서버로 전송합니다.
//
// 호출당 정확히 한 번의 HTTP POST 요청을 전송하며, 재시도하지 않습니다.
// 전송 결과는 아래와 같이 구분되어 반환됩니다.
//   - 200 응답 → nil
//   - 200 이외의 응답 → *APIError (상태 코드, 헤더, 응답 본문 일부 포함)
//   - 전송 계층 실패 → *SendError (원인 에러 포함)
//   - 요청 URL 조립 실패 → *FormatError
func (c *Client) Send(ctx context.Context, n *Notification) error {
	// 전송 단위 로그 추적을 위한 상관관계 ID
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"send_id": uuid.New().String(),
	})

	requestURL, err := buildRequestURL(c.endpoint, n)
	if err != nil {
		logger.Errorf("알림 전송 요청 URL 조립이 실패하였습니다.(error:%s)", err)
		return err
	}

	logger.Tracef("알림 전송 요청 URL이 조립되었습니다.(URL:%s)", fetcher.RedactRawURL(requestURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, nil)
	if err != nil {
		logger.Errorf("알림 전송 요청 생성이 실패하였습니다.(error:%s)", err)
		return &FormatError{Cause: err}
	}

	resp, err := c.fetcher.Do(req)
	if err != nil {
		logger.Errorf("알림 전송이 실패하였습니다.(error:%s)", err)
		return &SendError{URL: fetcher.RedactRawURL(requestURL), Cause: err}
	}
	defer func() {
		// 커넥션 재사용을 위해 남은 본문을 모두 소비한 후 닫습니다.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetLength))

		apiErr := &APIError{
			StatusCode:  resp.StatusCode,
			Status:      resp.Status,
			URL:         fetcher.RedactRawURL(requestURL),
			Header:      resp.Header,
			BodySnippet: strutil.Truncate(string(body), maxBodySnippetLength),
		}

		logger.Errorf("알림 전송에 대해 API 서버가 에러 응답을 반환하였습니다.(상태:%s)", resp.Status)

		return apiErr
	}

	logger.Debug("알림 전송이 정상적으로 완료되었습니다.")

	return nil
}
