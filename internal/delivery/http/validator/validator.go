// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "voyage/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request structs using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag violations surface as a 400
// validation error carrying the offending fields.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return domainerrors.ErrValidationFailed.WithDetails(validationErrs.Error())
		}

		return errors.Wrap(err, "failed to validate request")
	}

	return nil
}
