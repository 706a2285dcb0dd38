package prowl

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComponent(t *testing.T) {
	t.Run("공백은 %20으로 인코딩됨", func(t *testing.T) {
		assert.Equal(t, "hello%20world", encodeComponent("hello world"))
	})

	t.Run("비예약 문자는 인코딩되지 않음", func(t *testing.T) {
		assert.Equal(t, "a-b_c.d~e", encodeComponent("a-b_c.d~e"))
	})

	t.Run("예약 문자는 인코딩됨", func(t *testing.T) {
		assert.Equal(t, "a%26b%3Dc%25d", encodeComponent("a&b=c%d"))
	})

	t.Run("인코딩 결과를 디코딩하면 원본이 복원됨", func(t *testing.T) {
		inputs := []string{
			"hello world",
			"a&b=c",
			"100%",
			"한글 알림 메시지",
			"emoji 🚀 test",
			"mixed: 한글 & english = 100%?",
		}

		for _, input := range inputs {
			encoded := encodeComponent(input)

			decoded, err := url.QueryUnescape(encoded)
			require.NoError(t, err, input)
			assert.Equal(t, input, decoded, input)
		}
	})
}

func TestBuildRequestURL(t *testing.T) {
	t.Run("쿼리 파라미터가 고정된 순서로 나열됨", func(t *testing.T) {
		n, err := NewNotification(
			[]string{"KEY1"},
			"My App",
			"Event Title",
			"Event Description",
			WithURL("https://example.com/?a=1&b=2"),
			WithPriority(PriorityEmergency),
		)
		require.NoError(t, err)

		got, err := buildRequestURL(DefaultEndpoint, n)
		require.NoError(t, err)

		expected := DefaultEndpoint +
			"?apikey=KEY1" +
			"&application=My%20App" +
			"&event=Event%20Title" +
			"&description=Event%20Description" +
			"&url=https%3A%2F%2Fexample.com%2F%3Fa%3D1%26b%3D2" +
			"&priority=2"
		assert.Equal(t, expected, got)
	})

	t.Run("API 키 목록은 쉼표로 연결되며 인코딩되지 않음", func(t *testing.T) {
		n, err := NewNotification([]string{"AAA", "BBB"}, "App", "Evt", "Desc")
		require.NoError(t, err)

		got, err := buildRequestURL(DefaultEndpoint, n)
		require.NoError(t, err)

		assert.Contains(t, got, "?apikey=AAA,BBB&")
	})

	t.Run("미지정된 url과 priority 파라미터는 생략됨", func(t *testing.T) {
		n, err := NewNotification([]string{"KEY1"}, "App", "Evt", "Desc")
		require.NoError(t, err)

		got, err := buildRequestURL(DefaultEndpoint, n)
		require.NoError(t, err)

		assert.NotContains(t, got, "&url=")
		assert.NotContains(t, got, "&priority=")
		assert.True(t, strings.HasSuffix(got, "&description=Desc"))
	})

	t.Run("priority 파라미터는 부호 있는 정수 코드로 표현됨", func(t *testing.T) {
		n, err := NewNotification([]string{"KEY1"}, "App", "Evt", "Desc", WithPriority(PriorityVeryLow))
		require.NoError(t, err)

		got, err := buildRequestURL(DefaultEndpoint, n)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(got, "&priority=-2"))
	})

	t.Run("잘못된 형식의 엔드포인트는 FormatError 반환", func(t *testing.T) {
		n, err := NewNotification([]string{"KEY1"}, "App", "Evt", "Desc")
		require.NoError(t, err)

		_, err = buildRequestURL("http://%zz", n)
		require.Error(t, err)

		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("인코딩된 파라미터 값을 디코딩하면 원본 필드값이 복원됨", func(t *testing.T) {
		n, err := NewNotification(
			[]string{"KEY1"},
			"앱 & 이름 = 100%",
			"제목: 공백 포함",
			"본문 내용 & 특수문자 = % 테스트",
		)
		require.NoError(t, err)

		got, err := buildRequestURL(DefaultEndpoint, n)
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)

		query := u.Query()
		assert.Equal(t, "앱 & 이름 = 100%", query.Get("application"))
		assert.Equal(t, "제목: 공백 포함", query.Get("event"))
		assert.Equal(t, "본문 내용 & 특수문자 = % 테스트", query.Get("description"))
	})
}
