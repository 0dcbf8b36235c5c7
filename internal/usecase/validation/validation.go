package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/niklvrr/DevProjects/internal/domain"
	"github.com/niklvrr/DevProjects/internal/infrastructure/query"
)

type Kind string

const (
	KindMissing Kind = "missing"
	KindEmpty   Kind = "empty"
	KindInvalid Kind = "invalid"
	KindOption  Kind = "option"
)

// Error ошибка валидации тела запроса.
// Fields - поля, о которых идет речь; Options - допустимые значения или ключи-подсказки.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Options []string
}

func (e *Error) Error() string {
	return e.Message
}

// Patch частичное обновление с явным отображением поле -> колонка
type Patch interface {
	Keys() []string
	FieldSet() query.FieldSet
}

// Валидаторы по тегам с перечислимыми значениями и их каталогами
var catalogs = map[string][]string{
	"preferred_os": domain.PreferredOSOptions,
	"technology":   domain.TechnologyOptions,
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используем имена полей из json
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"preferred_os": func(fl validator.FieldLevel) bool {
			return domain.IsPreferredOS(fl.Field().String())
		},
		"technology": func(fl validator.FieldLevel) bool {
			return domain.IsTechnology(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		// Ошибка здесь - ошибка программиста, сервис с ней стартовать не должен
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return &Validator{v: v}
}

// Struct проверяет тело запроса на создание: обязательные поля, затем форматы и каталоги.
func (v *Validator) Struct(req any) error {
	err := v.v.Struct(withoutEmpty(req))
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	// Сначала собираем все отсутствующие поля, порядок - порядок объявления в структуре
	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return &Error{
			Kind:    KindMissing,
			Message: "missing required fields: " + strings.Join(missing, ", "),
			Fields:  missing,
		}
	}

	fe := fieldErrs[0]
	if options, ok := catalogs[fe.Tag()]; ok {
		return &Error{
			Kind:    KindOption,
			Message: fmt.Sprintf("invalid %s option", fe.Field()),
			Fields:  []string{fe.Field()},
			Options: options,
		}
	}
	return &Error{
		Kind:    KindInvalid,
		Message: fmt.Sprintf("invalid %s: %s", fe.Field(), describe(fe)),
		Fields:  []string{fe.Field()},
	}
}

// Patch проверяет переданные поля и возвращает непустой набор колонок для UPDATE.
func (v *Validator) Patch(req any, patch Patch) (query.FieldSet, error) {
	fields := patch.FieldSet()
	if len(fields) == 0 {
		return nil, &Error{
			Kind:    KindEmpty,
			Message: "at least one of those keys must be sent",
			Options: patch.Keys(),
		}
	}

	if err := v.Struct(req); err != nil {
		return nil, err
	}
	return fields, nil
}

// withoutEmpty возвращает копию запроса, в которой указатели на пустые значения
// заменены на nil: такие поля в патч не попадают и проверяться не должны.
func withoutEmpty(req any) any {
	rv := reflect.ValueOf(req)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return req
	}

	cp := reflect.New(rv.Elem().Type())
	cp.Elem().Set(rv.Elem())
	for i := 0; i < cp.Elem().NumField(); i++ {
		f := cp.Elem().Field(i)
		if f.Kind() == reflect.Pointer && f.CanSet() && !f.IsNil() && f.Elem().IsZero() {
			f.Set(reflect.Zero(f.Type()))
		}
	}
	return cp.Interface()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in format " + fe.Param()
	case "max":
		if fe.Kind() != reflect.String {
			return "must be at most " + fe.Param()
		}
		return "must be at most " + fe.Param() + " characters long"
	case "url":
		return "must be a valid url"
	case "gt", "min":
		return "must be greater than " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
