package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that also enforces `required` on struct
// fields such as time.Time.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ProcessValidationErrors maps each failing field to the tag it failed on.
// It returns nil when err holds no validator.ValidationErrors.
func ProcessValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	errorResponse := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}

// DescribeValidationErrors renders validation failures as "Field: tag" pairs,
// falling back to err.Error() for any other error.
func DescribeValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		parts = append(parts, ve.Field()+": "+ve.Tag())
	}
	return strings.Join(parts, ", ")
}
