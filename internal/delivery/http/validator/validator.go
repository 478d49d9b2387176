// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"unicode"

	domainerrors "padron/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so echo can run struct validation
// on bound request payloads.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the validator used by the HTTP server. It registers the custom
// "alphaspace" rule used by name fields.
func New() *echoValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	// Registration only fails for an empty tag name, safe to ignore here.
	_ = validate.RegisterValidation("alphaspace", alphaSpace)

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. Validation failures surface as a 400
// through the error middleware.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// alphaSpace accepts letters and spaces only.
func alphaSpace(fl playground.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}

	return true
}
