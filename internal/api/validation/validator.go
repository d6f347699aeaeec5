package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/blaisecz/gym-dashboard/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names so errors match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "", Message: err.Error()}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err.Namespace()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// fieldPath keeps only JSON names: "HealthProfileInput.weight.value" becomes "weight.value".
// The root struct and embedded structs have no JSON name and show up as capitalized Go names.
func fieldPath(namespace string) string {
	var kept []string
	for _, p := range strings.Split(namespace, ".") {
		if p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + err.Param()
	case "lte":
		return "must be at most " + err.Param()
	case "min":
		if err.Kind() == reflect.Slice || err.Kind() == reflect.String {
			return "must have at least " + err.Param() + " characters or items"
		}
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.Slice || err.Kind() == reflect.String {
			return "must have at most " + err.Param() + " characters or items"
		}
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	default:
		return "is invalid"
	}
}
