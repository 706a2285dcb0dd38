package prowl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/darkkaiser/prowl-notify/internal/fetcher"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestNotification(t *testing.T) *Notification {
	t.Helper()

	n, err := NewNotification([]string{"KEY1"}, "App", "Evt", "Desc")
	require.NoError(t, err)
	return n
}

func TestNewClient(t *testing.T) {
	t.Run("기본 엔드포인트로 생성", func(t *testing.T) {
		c := NewClient()

		require.NotNil(t, c)
		assert.Equal(t, DefaultEndpoint, c.endpoint)
		assert.NotNil(t, c.fetcher)
	})

	t.Run("WithEndpoint 옵션으로 엔드포인트 변경", func(t *testing.T) {
		c := NewClient(WithEndpoint("http://127.0.0.1:8080/add"))

		assert.Equal(t, "http://127.0.0.1:8080/add", c.endpoint)
	})

	t.Run("WithFetcher 옵션이 WithTimeout 옵션보다 우선 적용", func(t *testing.T) {
		injected := fetcher.NewHTTPFetcher()

		c := NewClient(WithTimeout(5*time.Second), WithFetcher(injected))

		assert.Same(t, injected, c.fetcher)
	})
}

func TestClientSend(t *testing.T) {
	t.Run("200 응답이면 성공", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			gotQuery = r.URL.RawQuery
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		n, err := NewNotification([]string{"KEY1"}, "My App", "Evt", "Desc")
		require.NoError(t, err)

		c := NewClient(WithEndpoint(server.URL))

		err = c.Send(context.Background(), n)
		require.NoError(t, err)

		assert.Equal(t, "apikey=KEY1&application=My%20App&event=Evt&description=Desc", gotQuery)
	})

	t.Run("200 이외의 응답이면 APIError 반환", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("internal server error"))
		}))
		defer server.Close()

		c := NewClient(WithEndpoint(server.URL))

		err := c.Send(context.Background(), newTestNotification(t))
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "internal server error", apiErr.BodySnippet)
		assert.Equal(t, "text/plain", apiErr.Header.Get("Content-Type"))
	})

	t.Run("긴 에러 응답 본문은 일부만 보관됨", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(strings.Repeat("x", 10*1024)))
		}))
		defer server.Close()

		c := NewClient(WithEndpoint(server.URL))

		err := c.Send(context.Background(), newTestNotification(t))
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.LessOrEqual(t, len(apiErr.BodySnippet), 4*1024)
	})

	t.Run("연결할 수 없는 서버이면 SendError 반환", func(t *testing.T) {
		c := NewClient(WithEndpoint("http://127.0.0.1:1/add"))

		err := c.Send(context.Background(), newTestNotification(t))
		require.Error(t, err)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.NotNil(t, sendErr.Cause)
	})

	t.Run("Context 취소는 SendError로 전파됨", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		c := NewClient(WithEndpoint(server.URL))

		err := c.Send(ctx, newTestNotification(t))
		require.Error(t, err)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("잘못된 형식의 엔드포인트이면 FormatError 반환", func(t *testing.T) {
		c := NewClient(WithEndpoint("http://%zz"))

		err := c.Send(context.Background(), newTestNotification(t))
		require.Error(t, err)

		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("SendError의 URL에는 API 키가 노출되지 않음", func(t *testing.T) {
		c := NewClient(WithEndpoint("http://127.0.0.1:1/add"))

		n, err := NewNotification([]string{"SUPERSECRET"}, "App", "Evt", "Desc")
		require.NoError(t, err)

		err = c.Send(context.Background(), n)
		require.Error(t, err)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.NotContains(t, sendErr.URL, "SUPERSECRET")
		assert.Contains(t, sendErr.URL, "apikey=xxxxx")
	})

	t.Run("하나의 Notification을 여러 번 전송에 재사용 가능", func(t *testing.T) {
		var count int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		c := NewClient(WithEndpoint(server.URL))
		n := newTestNotification(t)

		require.NoError(t, c.Send(context.Background(), n))
		require.NoError(t, c.Send(context.Background(), n))
		assert.Equal(t, 2, count)
	})
}
