package api

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request DTO against its validation tags.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
