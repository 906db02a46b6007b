package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationMessage turns validator errors into a short sentence suitable for
// an inline form message. Other errors are returned as-is.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param()))
		case "datetime":
			messages = append(messages, fmt.Sprintf("%s must be a date in %s format", fieldErr.Field(), "YYYY-MM-DD"))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return strings.Join(messages, "; ")
}
