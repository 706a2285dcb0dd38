package prowl

import (
	"fmt"
	"net/http"
)

// Field 길이 제약 검증 대상이 되는 Notification의 필드를 나타내는 타입입니다.
type Field string

// 검증 대상 필드 상수
const (
	FieldApplication Field = "application"
	FieldEvent       Field = "event"
	FieldDescription Field = "description"
	FieldURL         Field = "url"
)

// 각 필드의 최대 길이(바이트) 제한입니다. Prowl API 서버가 정의하는 값입니다.
const (
	MaxApplicationLength = 256
	MaxEventLength       = 1024
	MaxDescriptionLength = 10000
	MaxURLLength         = 512
)

// CreationError Notification 생성 시 필드 길이 제약을 위반한 경우 반환되는 에러입니다.
//
// 길이는 인코딩 전의 원본 문자열을 바이트 단위로 측정한 값입니다.
// 이 에러는 항상 복구 가능합니다. 호출자가 입력값을 줄인 후
// 다시 생성을 시도하면 됩니다.
type CreationError struct {
	// Field 길이 제약을 위반한 필드
	Field Field

	// Actual 실제 필드 길이 (바이트)
	Actual int

	// Limit 해당 필드의 최대 허용 길이 (바이트)
	Limit int
}

// Error error 인터페이스 구현
func (e *CreationError) Error() string {
	return fmt.Sprintf("prowl: %s 필드의 길이가 최대 허용치를 초과하였습니다.(길이:%d, 최대:%d)", e.Field, e.Actual, e.Limit)
}

// SendError 네트워크 전송 단계에서 실패한 경우 반환되는 에러입니다.
// 연결 거부, DNS 조회 실패, Context 취소 등 전송 계층의 원인 에러를 감쌉니다.
type SendError struct {
	// URL 요청 대상 URL (민감 정보 마스킹 처리됨)
	URL string

	// Cause 전송 실패의 원인이 된 에러
	Cause error
}

// Error error 인터페이스 구현
func (e *SendError) Error() string {
	return fmt.Sprintf("prowl: 알림 전송 요청이 실패하였습니다.(URL:%s) - %v", e.URL, e.Cause)
}

// Unwrap 원인 에러를 반환합니다. errors.Is/As 체인 탐색을 지원합니다.
func (e *SendError) Unwrap() error {
	return e.Cause
}

// APIError Prowl API 서버가 200이 아닌 상태 코드로 응답한 경우 반환되는 에러입니다.
// 호출자가 응답을 직접 확인할 수 있도록 상태 코드, 헤더, 응답 본문 일부를 함께 전달합니다.
type APIError struct {
	// StatusCode HTTP 응답 상태 코드 (예: 500)
	StatusCode int

	// Status HTTP 응답 상태 문자열 (예: "500 Internal Server Error")
	Status string

	// URL 요청 대상 URL (민감 정보 마스킹 처리됨)
	URL string

	// Header HTTP 응답 헤더
	Header http.Header

	// BodySnippet 응답 본문의 앞부분 (최대 4KiB)
	BodySnippet string
}

// Error error 인터페이스 구현
func (e *APIError) Error() string {
	return fmt.Sprintf("prowl: API 서버가 에러 응답을 반환하였습니다.(상태:%s, URL:%s)", e.Status, e.URL)
}

// FormatError 요청 URL 조립 단계에서 실패한 경우 반환되는 에러입니다.
//
// 기본 엔드포인트를 사용하는 한 발생하지 않으며, WithEndpoint 옵션으로
// 잘못된 형식의 엔드포인트를 지정한 경우에 도달할 수 있습니다.
type FormatError struct {
	// Cause 조립 실패의 원인이 된 에러
	Cause error
}

// Error error 인터페이스 구현
func (e *FormatError) Error() string {
	return fmt.Sprintf("prowl: 요청 URL 조립에 실패하였습니다. - %v", e.Cause)
}

// Unwrap 원인 에러를 반환합니다.
func (e *FormatError) Unwrap() error {
	return e.Cause
}
