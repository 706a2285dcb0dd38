package prowl

import "slices"

// Notification Prowl API 서버로 전송할 하나의 푸시 알림을 표현하는 불변 값 객체입니다.
//
// NewNotification을 통해서만 생성할 수 있으며, 생성 시점에 모든 필드의
// 길이 제약이 검증되므로 생성된 Notification은 항상 유효한 상태입니다.
// 하나의 Notification은 여러 번 전송에 재사용할 수 있습니다.
type Notification struct {
	// apiKeys 수신 대상을 식별하는 API 키 목록 (1개 이상)
	// 여러 개를 지정하면 하나의 요청으로 여러 디바이스에 알림이 전파됩니다.
	apiKeys []string

	// application 알림을 보내는 애플리케이션 이름 (최대 256바이트)
	application string

	// event 알림 제목 (최대 1024바이트)
	event string

	// description 알림 본문 (최대 10000바이트)
	description string

	// url 알림에 첨부할 링크 (선택, 최대 512바이트)
	url    string
	hasURL bool

	// priority 알림 우선순위 (선택, 지정하지 않으면 요청에서 생략)
	priority    Priority
	hasPriority bool
}

// NotificationOption Notification 생성 시 선택 필드를 지정하는 함수형 옵션입니다.
type NotificationOption func(*Notification)

// WithPriority 알림의 우선순위를 지정합니다.
// 지정하지 않으면 priority 파라미터는 요청에서 생략됩니다.
func WithPriority(priority Priority) NotificationOption {
	return func(n *Notification) {
		n.priority = priority
		n.hasPriority = true
	}
}

// WithURL 알림에 첨부할 링크를 지정합니다. (최대 512바이트)
// 지정하지 않으면 url 파라미터는 요청에서 생략됩니다.
func WithURL(url string) NotificationOption {
	return func(n *Notification) {
		n.url = url
		n.hasURL = true
	}
}

// NewNotification 필드 길이 제약을 검증한 후 새로운 Notification을 생성합니다.
//
// 길이는 인코딩 전의 원본 문자열을 바이트 단위로 측정하며,
// application → event → description → url 순서로 검증합니다.
// 첫 번째 위반이 발견되는 즉시 *CreationError를 반환하고,
// 실패 시 부분적으로 생성된 객체는 반환되지 않습니다.
func NewNotification(apiKeys []string, application, event, description string, opts ...NotificationOption) (*Notification, error) {
	n := &Notification{
		apiKeys:     slices.Clone(apiKeys),
		application: application,
		event:       event,
		description: description,
	}
	for _, opt := range opts {
		opt(n)
	}

	if len(n.application) > MaxApplicationLength {
		return nil, &CreationError{Field: FieldApplication, Actual: len(n.application), Limit: MaxApplicationLength}
	}
	if len(n.event) > MaxEventLength {
		return nil, &CreationError{Field: FieldEvent, Actual: len(n.event), Limit: MaxEventLength}
	}
	if len(n.description) > MaxDescriptionLength {
		return nil, &CreationError{Field: FieldDescription, Actual: len(n.description), Limit: MaxDescriptionLength}
	}
	if n.hasURL && len(n.url) > MaxURLLength {
		return nil, &CreationError{Field: FieldURL, Actual: len(n.url), Limit: MaxURLLength}
	}

	return n, nil
}

// APIKeys API 키 목록의 복사본을 반환합니다.
func (n *Notification) APIKeys() []string {
	return slices.Clone(n.apiKeys)
}

// Application 애플리케이션 이름을 반환합니다.
func (n *Notification) Application() string {
	return n.application
}

// Event 알림 제목을 반환합니다.
func (n *Notification) Event() string {
	return n.event
}

// Description 알림 본문을 반환합니다.
func (n *Notification) Description() string {
	return n.description
}

// URL 알림에 첨부된 링크를 반환합니다. 두 번째 반환값은 링크 지정 여부입니다.
func (n *Notification) URL() (string, bool) {
	return n.url, n.hasURL
}

// Priority 알림의 우선순위를 반환합니다. 두 번째 반환값은 우선순위 지정 여부입니다.
func (n *Notification) Priority() (Priority, bool) {
	return n.priority, n.hasPriority
}
