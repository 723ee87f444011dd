package dto

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers custom validation rules for the asset manager
func RegisterCustomValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("asset_name", validateAssetName); err != nil {
		return fmt.Errorf("failed to register asset_name validator: %w", err)
	}
	return nil
}

// validateAssetName accepts a single file or folder name that is safe on every platform
func validateAssetName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || len(name) > 255 {
		return false
	}
	// dot names are hidden from listings
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.TrimSpace(name) != name || strings.HasSuffix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\<>:"|?*`) {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// NameCheck is validated before a name reaches the file system
type NameCheck struct {
	Name string `validate:"required,asset_name"`
}
