package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/darkkaiser/prowl-notify/internal/pkg/errors"
)

// validate 패키지 전역에서 공유하는 Validator 인스턴스입니다.
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러가 났을 때, 에러 메시지에 Go 구조체 필드명(예: APIKeys) 대신 JSON 이름(예: api_keys)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateStruct 구조체의 유효성을 검사하고, 사용자 친화적인 에러 메시지를 반환합니다.
func validateStruct(s interface{}, contextName string) error {
	if err := validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			// 첫 번째 에러만 상세히 보고
			firstErr := validationErrors[0]

			switch firstErr.Tag() {
			case "required":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정의 필수 항목(%s)이 비어있습니다", contextName, firstErr.Field()))
			case "min":
				return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정의 %s 항목에는 최소 %s개의 값이 필요합니다", contextName, firstErr.Field(), firstErr.Param()))
			}

			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정의 유효성 검증에 실패했습니다", contextName))
	}
	return nil
}
