// Package validator wires go-playground/validator into echo's request binding.
package validator

import (
	domainerrors "perkhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation AppError so the error middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
