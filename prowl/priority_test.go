package prowl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityCode(t *testing.T) {
	tests := []struct {
		priority Priority
		expected string
	}{
		{PriorityVeryLow, "-2"},
		{PriorityModerate, "-1"},
		{PriorityNormal, "0"},
		{PriorityHigh, "1"},
		{PriorityEmergency, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.priority.Code())
		})
	}
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityVeryLow.Valid())
	assert.True(t, PriorityEmergency.Valid())
	assert.False(t, Priority(-3).Valid())
	assert.False(t, Priority(3).Valid())
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "VeryLow", PriorityVeryLow.String())
	assert.Equal(t, "Moderate", PriorityModerate.String())
	assert.Equal(t, "Normal", PriorityNormal.String())
	assert.Equal(t, "High", PriorityHigh.String())
	assert.Equal(t, "Emergency", PriorityEmergency.String())
	assert.Equal(t, "Priority(5)", Priority(5).String())
}

func TestParsePriority(t *testing.T) {
	t.Run("이름 형식 (대소문자 구분 없음)", func(t *testing.T) {
		tests := []struct {
			input    string
			expected Priority
		}{
			{"VeryLow", PriorityVeryLow},
			{"moderate", PriorityModerate},
			{"NORMAL", PriorityNormal},
			{"high", PriorityHigh},
			{"Emergency", PriorityEmergency},
		}

		for _, tt := range tests {
			got, err := ParsePriority(tt.input)
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.expected, got, tt.input)
		}
	})

	t.Run("정수 코드 형식", func(t *testing.T) {
		got, err := ParsePriority("-2")
		require.NoError(t, err)
		assert.Equal(t, PriorityVeryLow, got)

		got, err = ParsePriority("2")
		require.NoError(t, err)
		assert.Equal(t, PriorityEmergency, got)
	})

	t.Run("유효하지 않은 값", func(t *testing.T) {
		_, err := ParsePriority("urgent")
		assert.Error(t, err)

		_, err = ParsePriority("3")
		assert.Error(t, err)

		_, err = ParsePriority("-3")
		assert.Error(t, err)
	})
}
