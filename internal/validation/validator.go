package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "salescli/internal/errors"
)

// FieldError describes one failed struct field
type FieldError struct {
	Field   string
	Message string
}

// Validator validates option and configuration structs using struct tags
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the custom rules registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("delimiter", isDelimiter)
	v.RegisterValidation("datelayout", isDateLayout)

	// Report fields by the name the user typed: CLI flag first, then YAML key
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"flag", "yaml"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates v and returns the failures as FieldErrors.
// A nil slice means v is valid.
func (v *Validator) Struct(s interface{}) ([]FieldError, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Namespace(),
			Message: formatValidationError(fe),
		})
	}
	return fields, nil
}

// Validate validates s and folds any failures into a single VALIDATION AppError
func (v *Validator) Validate(s interface{}) error {
	fields, err := v.Struct(s)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrTypeValidation, "invalid options", err)
	}
	if len(fields) == 0 {
		return nil
	}

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = f.Message
	}
	return apperrors.NewAppValidationError(strings.Join(msgs, "; ")).
		WithContext("fields", fields)
}

// formatValidationError formats validation error messages
func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	param := err.Param()

	switch err.Tag() {
	case "required", "required_if", "required_unless":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "delimiter":
		return fmt.Sprintf("%s must be a single character or \"tab\"", field)
	case "datelayout":
		return fmt.Sprintf("%s must be a Go time layout containing a date", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}

// Custom validators

// isDelimiter accepts "", "tab", `\t` or any single character
func isDelimiter(fl validator.FieldLevel) bool {
	d := fl.Field().String()
	switch d {
	case "", "tab", `\t`:
		return true
	}
	return utf8.RuneCountInString(d) == 1 && d != "\n" && d != "\r" && d != `"`
}

// isDateLayout accepts layouts that round-trip a reference date
func isDateLayout(fl validator.FieldLevel) bool {
	layout := fl.Field().String()
	if layout == "" {
		return false
	}
	ref := time.Date(2010, 2, 5, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	if err != nil {
		return false
	}
	return parsed.Year() == 2010 && parsed.Month() == time.February && parsed.Day() == 5
}
