package ambr

import (
	"errors"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// modelValidator checks decoded models against their required-field tags and
// renders violations as SchemaErrors with translated messages.
type modelValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newModelValidator() *modelValidator {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	// The default translations never fail to register for the bundled en
	// locale.
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &modelValidator{
		validate: validate,
		trans:    trans,
	}
}

// check validates v when it is a struct (directly or behind pointers) and
// converts the first violation to a SchemaError for endpoint.
func (mv *modelValidator) check(endpoint string, v any) error {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	err := mv.validate.Struct(value.Interface())
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return &SchemaError{
			Endpoint: endpoint,
			Field:    fe.Namespace(),
			Err:      errors.New(fe.Translate(mv.trans)),
		}
	}
	return &SchemaError{Endpoint: endpoint, Err: err}
}
