package util

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/myjobsapp/myjobs-api/internal/normalize"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct runs validator tags and folds failures into a field-keyed
// FormError so every validation error reaches the client in the same shape.
func ValidateStruct(s any) *FormError {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[normalize.CamelToSnake(fe.Field())] = validationMessage(fe)
		}
	} else {
		fields["non_field_errors"] = err.Error()
	}
	return NewFormError("validation failed", fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
