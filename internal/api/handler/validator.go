package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// ValidationError lists every rule an input broke, in field order.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Violations, "; ") }

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// ruleMessages renders a failed tag; %[1]s is the field and %[2]s the param.
var ruleMessages = map[string]string{
	"required":         "%[1]s is required",
	"required_without": "%[1]s is required when %[2]s is missing",
	"url":              "%[1]s must be a valid URL",
	"gt":               "%[1]s must be greater than %[2]s",
	"gte":              "%[1]s must be at least %[2]s",
	"min":              "%[1]s must be at least %[2]s characters",
	"max":              "%[1]s must be at most %[2]s characters",
	"oneof":            "%[1]s must be one of: %[2]s",
}

type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns the echo.Validator for procedure inputs. Violations
// name fields by their JSON key so clients see their own vocabulary.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &echoValidator{v: v}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{Violations: make([]string, 0, len(ve))}
	for _, fe := range ve {
		out.Violations = append(out.Violations, violation(fe))
	}
	return out
}

func violation(fe validator.FieldError) string {
	if format, ok := ruleMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
}
