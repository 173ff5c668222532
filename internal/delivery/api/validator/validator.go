// Package validator adapts go-playground/validator to echo and renders
// failures as field keyed messages.
package validator

import (
	"reflect"
	"strings"

	domainerrors "inventory/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})
	// filled rejects an empty value behind a non-nil pointer, which required accepts.
	_ = validate.RegisterValidation("filled", func(fl validator.FieldLevel) bool {
		return !fl.Field().IsZero()
	})

	return &CustomValidator{validate: validate}
}

// Validate returns a *domainerrors.ValidationError listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	result := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}

	return result
}

// Attribute turns a JSON field name into the words used in messages.
func Attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func message(fe validator.FieldError) string {
	attr := Attribute(fe.Field())

	switch fe.Tag() {
	case "required", "filled":
		return "The " + attr + " field is required."
	case "email":
		return "The " + attr + " field must be a valid email address."
	case "max":
		return "The " + attr + " field must not be greater than " + fe.Param() + " characters."
	case "min":
		return "The " + attr + " field must be at least " + fe.Param() + " characters."
	case "eqfield":
		return "The " + attr + " field confirmation does not match."
	case "datetime":
		return "The " + attr + " field must be a valid date."
	default:
		return "The " + attr + " field is invalid."
	}
}
