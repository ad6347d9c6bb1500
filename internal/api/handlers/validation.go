package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имена полей берем из json-тегов
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("register rfc3339 validator: %v", err))
	}

	return v
}

// Validate проверяет модель запроса по тегам validate.
// Возвращает ошибки по полям или nil.
func Validate(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe)] = describe(fe)
	}
	return details
}

// fieldPath путь поля без имени корневой структуры
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "min":
		return fmt.Sprintf("минимум %s", fe.Param())
	case "max":
		return fmt.Sprintf("максимум %s", fe.Param())
	case "rfc3339":
		return "ожидается дата и время в формате RFC 3339"
	case "oneof":
		return fmt.Sprintf("допустимые значения: %s", fe.Param())
	default:
		return fmt.Sprintf("не прошло проверку %s", fe.Tag())
	}
}
