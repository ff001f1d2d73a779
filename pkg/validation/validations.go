package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/fitfusion/pkg/errorvalues"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func Init() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Field errors are reported with the json name the user sees
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// Struct validates a draft. Every failure wraps errorvalues.ErrValidation
func Struct(v any) error {
	Init()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		joined := make([]error, 0, len(fieldErrors)+1)
		joined = append(joined, errorvalues.ErrValidation)
		for _, fieldErr := range fieldErrors {
			joined = append(joined, &FieldError{
				Field:   fieldErr.Field(),
				Message: message(fieldErr),
			})
		}
		return errors.Join(joined...)
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err)
}

type FieldError struct {
	Field   string
	Message string
}

func (fe *FieldError) Error() string {
	return fe.Message
}

// Messages extracts user facing messages from a validation error
func Messages(err error) []string {
	var msgs []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			var fe *FieldError
			if errors.As(e, &fe) {
				msgs = append(msgs, fe.Message)
			}
		}
	}
	if len(msgs) == 0 && err != nil {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// ParseMinutes converts raw form input into whole minutes
func ParseMinutes(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: duration must be a number", errorvalues.ErrValidation)
	}
	return v, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s cannot be greater than %s", fe.Field(), lowerFirst(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fe.Field() + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
