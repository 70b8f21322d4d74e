package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New returns a validator with the custom tags used by the domain inputs registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	// rejects whitespace-only strings, which "required" lets through
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}
