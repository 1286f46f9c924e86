// Package validate checks decoded request bodies against their struct tags
// using go-playground/validator and reports failures per JSON field name.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// email_shape is looser than the built-in email tag: anything@anything.anything.
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return domain.ValidEmail(fl.Field().String())
	})
	return v
}

// Struct validates s and returns a message per failing field, or nil when s
// is valid.
func Struct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email_shape":
		return "Invalid email format"
	case "min":
		return "Value is too short (min: " + fe.Param() + ")"
	case "max":
		return "Value is too long (max: " + fe.Param() + ")"
	case "gt":
		return "Value must be greater than " + fe.Param()
	}
	return "Invalid value"
}
