package model

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  = newValidator()
	sanitizer = bluemonday.StrictPolicy()

	phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients can map errors to inputs.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
		return IsPosition(fl.Field().String())
	})
	return v
}

// Validate checks v against its `validate` tags and returns one FieldError
// per failure. It returns nil when v is valid.
func Validate(v any) []FieldError {
	return toFieldErrors(validate.Struct(v), "")
}

// ValidateEach validates every element of a slice body, prefixing field
// names with the element index.
func ValidateEach[T any](items []T) []FieldError {
	var out []FieldError
	for i := range items {
		out = append(out, toFieldErrors(validate.Struct(&items[i]), fmt.Sprintf("[%d].", i))...)
	}
	return out
}

func toFieldErrors(err error, prefix string) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   prefix + fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath drops the leading struct type from a validator namespace,
// "GameSchedule.games[0].gameDate" becomes "games[0].gameDate".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must match 999-999-9999"
	case "position":
		return "is not a known crew position"
	case "datetime":
		return fmt.Sprintf("must match format %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// Sanitize strips markup from free text and trims surrounding whitespace.
// The result is plain text; entity escaping is left to whatever renders it.
// Stripping repeats until unescaping uncovers no further markup, so encoded
// tags such as &lt;script&gt; are removed too.
func Sanitize(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(sanitizer.Sanitize(s))
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
	return strings.TrimSpace(sanitizer.Sanitize(s))
}

const maxSanitizePasses = 8

func sanitizePtr(s *string) {
	if s != nil {
		*s = Sanitize(*s)
	}
}
