package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	apperrors "github.com/darkkaiser/prowl-notify/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := apperrors.New(apperrors.InvalidInput, "입력값이 올바르지 않습니다")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))

	assert.Equal(t, apperrors.InvalidInput, appErr.Type())
	assert.Equal(t, "입력값이 올바르지 않습니다", appErr.Message())
	assert.Contains(t, err.Error(), "[InvalidInput]")
	assert.NotEmpty(t, appErr.Stack(), "에러 생성 시점의 스택 정보가 수집되어야 함")
}

func TestWrap(t *testing.T) {
	t.Run("nil 에러 래핑 시 nil 반환", func(t *testing.T) {
		assert.Nil(t, apperrors.Wrap(nil, apperrors.System, "무시됨"))
	})

	t.Run("원인 에러 체이닝", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := apperrors.Wrap(cause, apperrors.Unavailable, "API 요청 실패")

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause, apperrors.RootCause(err))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		errType  apperrors.ErrorType
		expected bool
	}{
		{
			name:     "단일 에러의 타입 일치",
			err:      apperrors.New(apperrors.Timeout, "시간 초과"),
			errType:  apperrors.Timeout,
			expected: true,
		},
		{
			name:     "체인 내부의 타입 일치",
			err:      apperrors.Wrap(apperrors.New(apperrors.NotFound, "없음"), apperrors.Internal, "조회 실패"),
			errType:  apperrors.NotFound,
			expected: true,
		},
		{
			name:     "일치하는 타입 없음",
			err:      apperrors.New(apperrors.System, "시스템 오류"),
			errType:  apperrors.InvalidInput,
			expected: false,
		},
		{
			name:     "외부 에러는 타입 없음",
			err:      stderrors.New("plain error"),
			errType:  apperrors.Unknown,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apperrors.Is(tt.err, tt.errType))
		})
	}
}

func TestFormat(t *testing.T) {
	cause := stderrors.New("file not found")
	err := apperrors.Wrap(cause, apperrors.System, "설정 파일 로드 실패")

	t.Run("%v는 단순 메시지 출력", func(t *testing.T) {
		s := fmt.Sprintf("%v", err)
		assert.Contains(t, s, "[System] 설정 파일 로드 실패: file not found")
		assert.NotContains(t, s, "Stack trace:")
	})

	t.Run("%+v는 스택과 원인 출력", func(t *testing.T) {
		s := fmt.Sprintf("%+v", err)
		assert.Contains(t, s, "Stack trace:")
		assert.Contains(t, s, "Caused by:")
	})
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "Unknown", apperrors.Unknown.String())
	assert.Equal(t, "InvalidInput", apperrors.InvalidInput.String())
	assert.Equal(t, "Unavailable", apperrors.Unavailable.String())
	assert.Equal(t, "Unknown", apperrors.ErrorType(999).String())
}
