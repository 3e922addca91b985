package tripay

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use once the custom tags are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("closed_code", func(fl validator.FieldLevel) bool {
		return ClosedPaymentCode(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("open_code", func(fl validator.FieldLevel) bool {
		return OpenPaymentCode(fl.Field().String()).Valid()
	})

	return v
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return &RequestSetupError{Err: err}
	}
	return nil
}

func validateRequired(name, value string) error {
	if err := validate.Var(value, "required"); err != nil {
		return &RequestSetupError{Err: fieldError{name: name, err: err}}
	}
	return nil
}

type fieldError struct {
	name string
	err  error
}

func (e fieldError) Error() string { return e.name + " is required" }

func (e fieldError) Unwrap() error { return e.err }
