package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs struct tags and reports the first failure as a 400 with message.
func ValidateRequest(req interface{}, message string) error {
	if err := validate.Struct(req); err != nil {
		appErr := BadRequest(message)
		appErr.Err = err
		return appErr
	}
	return nil
}
