package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPFetcher(t *testing.T) {
	t.Run("기본 생성: 타임아웃 없는 클라이언트", func(t *testing.T) {
		f := NewHTTPFetcher()

		require.NotNil(t, f)
		require.NotNil(t, f.client)
		assert.Equal(t, time.Duration(0), f.client.Timeout)
	})

	t.Run("WithTimeout 옵션 적용", func(t *testing.T) {
		f := NewHTTPFetcher(WithTimeout(5 * time.Second))

		assert.Equal(t, 5*time.Second, f.client.Timeout)
	})

	t.Run("음수 타임아웃은 0으로 보정", func(t *testing.T) {
		f := NewHTTPFetcher(WithTimeout(-1 * time.Second))

		assert.Equal(t, time.Duration(0), f.client.Timeout)
	})

	t.Run("WithHTTPClient 옵션이 다른 옵션보다 우선 적용", func(t *testing.T) {
		customClient := &http.Client{Timeout: 3 * time.Second}

		f := NewHTTPFetcher(WithHTTPClient(customClient), WithTimeout(10*time.Second))

		assert.Same(t, customClient, f.client)
		assert.Equal(t, 3*time.Second, f.client.Timeout)
	})

	t.Run("WithTransport 옵션 적용", func(t *testing.T) {
		transport := &http.Transport{}

		f := NewHTTPFetcher(WithTransport(transport))

		assert.Same(t, http.RoundTripper(transport), f.client.Transport)
	})
}

func TestHTTPFetcherDo(t *testing.T) {
	t.Run("정상적인 요청 및 응답 수신", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
		}))
		defer server.Close()

		f := NewHTTPFetcher()

		resp, err := Post(context.Background(), f, server.URL)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "success", string(body))
	})

	t.Run("Context 취소 시 요청 중단", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		f := NewHTTPFetcher()

		resp, err := Post(ctx, f, server.URL)
		if resp != nil {
			_ = resp.Body.Close()
		}

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("연결할 수 없는 서버 주소", func(t *testing.T) {
		f := NewHTTPFetcher()

		resp, err := Post(context.Background(), f, "http://127.0.0.1:1")
		if resp != nil {
			_ = resp.Body.Close()
		}

		require.Error(t, err)
	})
}

func TestPost(t *testing.T) {
	t.Run("잘못된 URL은 요청 생성 단계에서 실패", func(t *testing.T) {
		f := NewHTTPFetcher()

		resp, err := Post(context.Background(), f, "http://%zz invalid")

		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("본문 없는 POST 요청 생성", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Empty(t, body)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		resp, err := Post(context.Background(), NewHTTPFetcher(), server.URL)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
