package dto

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var mergeFieldPathPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(\|[A-Za-z][A-Za-z0-9]*)*$`)

// RegisterCustomValidators registers custom validation rules for the merge field module
func RegisterCustomValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("merge_field_path", validateMergeFieldPath); err != nil {
		return fmt.Errorf("failed to register merge_field_path validator: %w", err)
	}
	return nil
}

// validateMergeFieldPath accepts pipe separated identifiers, e.g. Person|Campus|Name
func validateMergeFieldPath(fl validator.FieldLevel) bool {
	return mergeFieldPathPattern.MatchString(fl.Field().String())
}

// FieldPath is validated before a path is resolved against the registry
type FieldPath struct {
	ID string `validate:"required,max=500,merge_field_path"`
}
