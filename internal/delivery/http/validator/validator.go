// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "ecoconnect/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// structValidator wraps a validator instance for echo.
type structValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the echo server.
func New() *structValidator {
	return &structValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as
// validation errors carrying the offending fields.
func (v *structValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
