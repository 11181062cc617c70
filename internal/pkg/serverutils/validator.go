package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"sitebuilder-be/internal/pkg/apperror"
	"sitebuilder-be/pkg/icons"
	"sitebuilder-be/pkg/slug"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so messages match what the admin UI sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.IsValid(fl.Field().String())
	})
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		_, ok := icons.Resolve(fl.Field().String())
		return ok
	})

	return v
}

// ValidateRequest runs struct validation and converts failures into a 400 AppError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.ValidationFailed(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return apperror.ValidationFailed(problems...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "email":
		return "must be a valid email address"
	case "iscolor", "hexcolor":
		return "must be a CSS color"
	case "url":
		return "must be a valid URL"
	case "slug":
		return "must contain only lowercase letters, digits and hyphens"
	case "icon":
		return "is not a known icon"
	case "dive":
		return "contains an invalid entry"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
