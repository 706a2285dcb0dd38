// Package config 애플리케이션의 설정 로드와 유효성 검증을 담당하는 패키지입니다.
//
// 설정은 기본값 → JSON 설정 파일 → 환경 변수 순서로 로드되며,
// 뒤에 로드된 값이 앞의 값을 덮어씁니다.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/prowl-notify/internal/pkg/errors"
	"github.com/darkkaiser/prowl-notify/prowl"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "prowl-notify"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// ------------------------------------------------------------------------------------------------
	// 설정 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultApplication 알림의 애플리케이션 이름 기본값
	DefaultApplication = AppName

	// DefaultHTTPTimeout 알림 전송 요청의 타임아웃 기본값
	DefaultHTTPTimeout = "10s"

	// DefaultLogDir 로그 파일 저장 디렉토리 기본값
	DefaultLogDir = "logs"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug        bool               `json:"debug"`
	Notification NotificationConfig `json:"notification"`
	HTTP         HTTPConfig         `json:"http"`
	Log          LogConfig          `json:"log"`
}

// NotificationConfig 전송할 알림의 내용과 대상을 정의하는 설정 구조체
//
// 필드 길이 제한은 prowl 라이브러리가 전송 전에 다시 검증하므로,
// 이곳의 검증은 빠른 실패와 친화적인 에러 메시지 제공이 목적입니다.
type NotificationConfig struct {
	APIKeys     []string `json:"api_keys" validate:"required,min=1,dive,required"`
	Application string   `json:"application" validate:"required"`
	Event       string   `json:"event"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Priority    string   `json:"priority"`
}

// validate 알림 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *NotificationConfig) validate() error {
	if err := validateStruct(c, "Notification"); err != nil {
		return err
	}

	for _, apiKey := range c.APIKeys {
		if strings.TrimSpace(apiKey) == "" {
			return apperrors.New(apperrors.InvalidInput, "API 키(api_keys) 목록에 비어있는 값이 존재합니다")
		}
	}

	if c.Priority != "" {
		if _, err := prowl.ParsePriority(c.Priority); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("알림 우선순위(priority) 설정이 올바르지 않습니다: '%s' (예: VeryLow, Moderate, Normal, High, Emergency 또는 -2 ~ 2)", c.Priority))
		}
	}

	return nil
}

// ParsedPriority 설정된 우선순위 문자열을 prowl.Priority로 변환하여 반환합니다.
// 두 번째 반환값은 우선순위 지정 여부입니다.
func (c *NotificationConfig) ParsedPriority() (prowl.Priority, bool) {
	if c.Priority == "" {
		return 0, false
	}

	// validate()에서 이미 검증되었으므로 여기서는 실패하지 않습니다.
	p, err := prowl.ParsePriority(c.Priority)
	if err != nil {
		return 0, false
	}
	return p, true
}

// HTTPConfig 알림 전송에 사용되는 HTTP 클라이언트 동작을 정의하는 설정 구조체
type HTTPConfig struct {
	// Endpoint Prowl API 엔드포인트 재정의 (비어있으면 기본 엔드포인트 사용)
	Endpoint string `json:"endpoint"`

	// Timeout 요청 전체에 대한 타임아웃 (예: 10s, 500ms)
	Timeout string `json:"timeout"`
}

func (c *HTTPConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("HTTP 타임아웃(timeout) 설정이 올바르지 않습니다: '%s' (예: 10s, 500ms)", c.Timeout))
	}
	return nil
}

// ParsedTimeout 설정된 타임아웃 문자열을 time.Duration으로 변환하여 반환합니다.
func (c *HTTPConfig) ParsedTimeout() time.Duration {
	// validate()에서 이미 검증되었으므로 여기서는 실패하지 않습니다.
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// LogConfig 로그 파일 저장 위치를 정의하는 설정 구조체
type LogConfig struct {
	Dir string `json:"dir" validate:"required"`
}

func (c *LogConfig) validate() error {
	return validateStruct(c, "Log")
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.Notification.validate(); err != nil {
		return err
	}

	if err := c.HTTP.validate(); err != nil {
		return err
	}

	if err := c.Log.validate(); err != nil {
		return err
	}

	return nil
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"notification.application": DefaultApplication,
		"http.timeout":             DefaultHTTPTimeout,
		"log.dir":                  DefaultLogDir,
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: PROWL_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: PROWL_HTTP__TIMEOUT -> http.timeout
	if err := k.Load(env.Provider("PROWL_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "PROWL_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
