package log_test

import (
	"os"
	"path/filepath"
	"testing"

	applog "github.com/darkkaiser/prowl-notify/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	t.Run("정상 설정", func(t *testing.T) {
		opts := applog.Options{Name: "prowl-notify"}
		assert.NoError(t, opts.Validate())
	})

	t.Run("Name 누락", func(t *testing.T) {
		opts := applog.Options{}
		assert.Error(t, opts.Validate())
	})

	t.Run("Dir이 파일로 존재하는 경우", func(t *testing.T) {
		dir := t.TempDir()
		filePath := filepath.Join(dir, "occupied")

		// Dir 위치에 파일을 미리 생성
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

		opts := applog.Options{Name: "prowl-notify", Dir: filePath}
		assert.Error(t, opts.Validate())
	})

	t.Run("음수 설정값", func(t *testing.T) {
		for _, opts := range []applog.Options{
			{Name: "n", MaxAge: -1},
			{Name: "n", MaxSizeMB: -1},
			{Name: "n", MaxBackups: -1},
		} {
			assert.Error(t, opts.Validate())
		}
	})
}

func TestProfiles(t *testing.T) {
	t.Run("운영 프로파일", func(t *testing.T) {
		opts := applog.NewProductionOptions("prowl-notify")
		assert.Equal(t, applog.InfoLevel, opts.Level)
		assert.True(t, opts.EnableCriticalLog)
		assert.False(t, opts.EnableConsoleLog)
		assert.NoError(t, opts.Validate())
	})

	t.Run("개발 프로파일", func(t *testing.T) {
		opts := applog.NewDevelopmentOptions("prowl-notify")
		assert.Equal(t, applog.TraceLevel, opts.Level)
		assert.True(t, opts.EnableConsoleLog)
		assert.NoError(t, opts.Validate())
	})
}

func TestMaskSensitiveData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"빈 문자열", "", ""},
		{"3자 이하 전체 마스킹", "abc", "***"},
		{"12자 이하 앞 4자만 표시", "abcdefgh", "abcd***"},
		{"긴 토큰은 앞뒤 4자 표시", "0123456789abcdef", "0123***cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, applog.MaskSensitiveData(tt.input))
		})
	}
}
