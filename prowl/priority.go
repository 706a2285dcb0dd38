package prowl

import (
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/prowl-notify/internal/pkg/errors"
)

// Priority 알림의 중요도를 나타내는 열거형 타입입니다.
//
// Prowl API가 정의하는 -2 ~ 2 범위의 부호 있는 정수 코드와 일대일로 대응하며,
// 수신 클라이언트는 이 값에 따라 알림 표시 방식을 달리합니다.
// (예: Emergency는 방해 금지 시간에도 알림을 표시할 수 있습니다)
type Priority int8

const (
	// PriorityVeryLow 매우 낮음 (-2)
	PriorityVeryLow Priority = -2
	// PriorityModerate 낮음 (-1)
	PriorityModerate Priority = -1
	// PriorityNormal 보통 (0)
	PriorityNormal Priority = 0
	// PriorityHigh 높음 (1)
	PriorityHigh Priority = 1
	// PriorityEmergency 긴급 (2)
	PriorityEmergency Priority = 2
)

// Valid Priority가 Prowl API가 허용하는 범위(-2 ~ 2)의 값인지 확인합니다.
func (p Priority) Valid() bool {
	return p >= PriorityVeryLow && p <= PriorityEmergency
}

// Code Priority를 Prowl API 쿼리 파라미터에 사용되는 정수 코드 문자열로 반환합니다.
func (p Priority) Code() string {
	return strconv.Itoa(int(p))
}

// String Priority를 사람이 읽을 수 있는 문자열로 반환합니다.
func (p Priority) String() string {
	switch p {
	case PriorityVeryLow:
		return "VeryLow"
	case PriorityModerate:
		return "Moderate"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	case PriorityEmergency:
		return "Emergency"
	default:
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePriority 문자열을 Priority로 변환합니다.
//
// 이름("VeryLow", "Normal" 등)과 정수 코드("-2" ~ "2") 형식을 모두 지원하며,
// 이름은 대소문자를 구분하지 않습니다. 설정 파일이나 커맨드라인 인자로부터
// Priority를 읽어들일 때 사용합니다.
func ParsePriority(s string) (Priority, error) {
	switch {
	case strings.EqualFold(s, "VeryLow"):
		return PriorityVeryLow, nil
	case strings.EqualFold(s, "Moderate"):
		return PriorityModerate, nil
	case strings.EqualFold(s, "Normal"):
		return PriorityNormal, nil
	case strings.EqualFold(s, "High"):
		return PriorityHigh, nil
	case strings.EqualFold(s, "Emergency"):
		return PriorityEmergency, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.Newf(apperrors.InvalidInput, "우선순위 값이 유효하지 않습니다.(값:%s)", s)
	}

	p := Priority(n)
	if !p.Valid() {
		return 0, apperrors.Newf(apperrors.InvalidInput, "우선순위 값이 허용 범위(-2 ~ 2)를 벗어났습니다.(값:%d)", n)
	}
	return p, nil
}
