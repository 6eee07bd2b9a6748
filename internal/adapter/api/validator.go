package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator
// interface. Validation failures surface as validator.ValidationErrors
// and are translated to the response envelope by pkg/response.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() echo.Validator {
	return &Validator{validator: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
