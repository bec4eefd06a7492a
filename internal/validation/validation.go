// Package validation checks structs with go-playground/validator and reports
// failures as English messages that name fields by a struct tag.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Violation is one failed rule.
type Violation struct {
	Field   string
	Message string
}

// Validator validates structs and translates the failures.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator reporting fields by the name in the tagName tag,
// e.g. "json" for requests or "mapstructure" for configuration.
func New(tagName string) (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: validate, trans: trans}, nil
}

// Check returns the violations of input, or nil when it is valid.
// The error is set only when input cannot be validated at all.
func (v *Validator) Check(input any) ([]Violation, error) {
	err := v.validate.Struct(input)
	if err == nil {
		return nil, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validate.Struct() > %w", err)
	}

	violations := make([]Violation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Message: fe.Translate(v.trans),
		})
	}
	return violations, nil
}

// Messages joins the messages of violations with ", ".
func Messages(violations []Violation) string {
	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violation.Message)
	}
	return strings.Join(messages, ", ")
}
