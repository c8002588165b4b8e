package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with the domain rules
// business_level, employee_role and supply_category registered
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("business_level", func(fl validator.FieldLevel) bool {
		_, err := simulation.ParseBusinessLevel(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("employee_role", func(fl validator.FieldLevel) bool {
		_, err := staff.ParseRole(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("supply_category", func(fl validator.FieldLevel) bool {
		_, err := supplies.ParseCategory(fl.Field().String())
		return err == nil
	})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
