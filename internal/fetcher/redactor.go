package fetcher

import (
	"net/url"
	"slices"
	"strings"
)

var (
	// sensitiveExactKeys 전체 문자열이 정확히 일치해야 마스킹되는 쿼리 파라미터 키워드 목록입니다.
	//
	// "key", "token"과 같이 일반적인 단어를 부분 일치로 검사하면, "monkey", "broken" 같은
	// 무해한 단어까지 마스킹되는 오탐이 발생할 수 있습니다.
	// 이를 방지하기 위해, 이곳에 정의된 키워드들은 대소문자 구분 없이 전체 문자열이 일치할 때만 민감한 정보로 처리합니다.
	sensitiveExactKeys = []string{
		// 1. 일반적인 보안 키워드
		"token", "auth", "key", "secret", "pass", "credential", "signature", "password",

		// 2. 널리 사용되는 API 키 및 토큰
		// Prowl API의 apikey/providerkey 파라미터를 포함합니다.
		"apikey", "providerkey",
		"access_token", "api_key", "client_secret", "refresh_token",
		"access_key", "secret_key", "private_key", "app_key", "auth_key",
	}

	// sensitiveSuffixes 특정 접미사로 끝나야 마스킹되는 쿼리 파라미터 키워드 목록입니다.
	// 예: 이 목록에 "_secret"이 있으면, "client_secret", "app_secret" 등이 모두 자동으로 마스킹됩니다.
	sensitiveSuffixes = []string{
		"_token", "_secret", "_cred", "_sig", "_password",
	}
)

// RedactURL URL에서 민감한 정보를 마스킹하여 안전한 문자열로 반환합니다.
//
// 로깅이나 에러 메시지에 URL을 포함할 때, API 키, 토큰, 사용자 인증 정보 등이
// 노출되지 않도록 보호합니다. URL의 구조는 유지하면서 민감한 값만 마스킹합니다.
//
//	u, _ := url.Parse("https://prowl.weks.net/publicapi/add?apikey=abc123&application=App")
//	safe := RedactURL(u)
//	// 결과: "https://prowl.weks.net/publicapi/add?apikey=xxxxx&application=App"
//
// 주의사항:
//   - 원본 URL 객체는 변경되지 않습니다.
//   - 쿼리 파라미터는 url.Values 재인코딩 과정에서 키가 정렬될 수 있습니다. (로깅 전용)
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	// 원본 URL을 변경하지 않기 위해 복사본을 만들어 작업합니다.
	ru := *u

	// 사용자 인증 정보 마스킹
	if u.User != nil {
		if _, has := u.User.Password(); has {
			ru.User = url.UserPassword(u.User.Username(), "xxxxx")
		} else if u.User.Username() != "" {
			// 비밀번호 없이 사용자명만 있는 경우 사용자명을 토큰으로 간주하여 마스킹합니다.
			ru.User = url.User("xxxxx")
		}
	}

	// 민감한 쿼리 파라미터 값 선별적 마스킹
	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if isSensitiveKey(key) {
				query.Set(key, "xxxxx")
			}
		}

		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

// RedactRawURL URL 문자열에서 민감한 정보를 마스킹하여 안전한 문자열로 반환합니다.
// 파싱에 실패한 문자열은 마스킹을 보장할 수 없으므로 전체를 가립니다.
func RedactRawURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "xxxxx"
	}
	return RedactURL(u)
}

// isSensitiveKey 주어진 키가 민감한 정보를 나타내는 키워드인지 확인합니다.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	if slices.Contains(sensitiveExactKeys, lowerKey) {
		return true
	}

	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(lowerKey, suffix) {
			return true
		}
	}

	return false
}
