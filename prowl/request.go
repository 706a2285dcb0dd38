package prowl

import (
	"net/url"
	"strings"
)

// encodeComponent 문자열을 RFC 3986 URL 컴포넌트 인코딩 방식으로 이스케이프합니다.
//
// url.QueryEscape는 application/x-www-form-urlencoded 규칙에 따라 공백을 '+'로
// 변환하지만, Prowl API는 쿼리 파라미터 값에 '%20' 형식을 기대하므로 이를 보정합니다.
// 비예약 문자('-', '_', '.', '~')는 이스케이프되지 않고 그대로 유지됩니다.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// buildRequestURL 알림 전송 요청 URL을 조립합니다.
//
// 쿼리 파라미터는 아래의 고정된 순서로 나열됩니다.
//
//	apikey → application → event → description → [url] → [priority]
//
// apikey 파라미터는 API 키들을 쉼표로 연결한 값을 인코딩 없이 그대로 사용하며,
// url과 priority 파라미터는 해당 필드가 지정된 경우에만 추가됩니다.
// 파라미터 순서를 보장해야 하므로 url.Values(키를 알파벳순으로 정렬함)를
// 사용하지 않고 쿼리 문자열을 직접 조립합니다.
func buildRequestURL(endpoint string, n *Notification) (string, error) {
	// 엔드포인트가 유효한 URL 형식인지 먼저 확인합니다.
	if _, err := url.Parse(endpoint); err != nil {
		return "", &FormatError{Cause: err}
	}

	var sb strings.Builder
	sb.WriteString(endpoint)
	sb.WriteString("?apikey=")
	sb.WriteString(strings.Join(n.apiKeys, ","))
	sb.WriteString("&application=")
	sb.WriteString(encodeComponent(n.application))
	sb.WriteString("&event=")
	sb.WriteString(encodeComponent(n.event))
	sb.WriteString("&description=")
	sb.WriteString(encodeComponent(n.description))

	if u, ok := n.URL(); ok {
		sb.WriteString("&url=")
		sb.WriteString(encodeComponent(u))
	}
	if p, ok := n.Priority(); ok {
		sb.WriteString("&priority=")
		sb.WriteString(p.Code())
	}

	return sb.String(), nil
}
