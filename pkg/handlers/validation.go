package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateStruct runs validator tags on s and folds every failure into one ErrInvalid
func ValidateStruct(validate *validator.Validate, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", err.Error(), ErrInvalid)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatValidationError(fieldErr))
	}
	return fmt.Errorf("%s: %w", strings.Join(messages, "; "), ErrInvalid)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is not provided", field, err.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid guid", field)
	case "merge_field_path":
		return fmt.Sprintf("%s must be a pipe separated merge field path", field)
	case "asset_name":
		return fmt.Sprintf("%s is not a valid file or folder name", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}
