package handlers

import (
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/SscSPs/currency_exchange/internal/core/ports"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeTag validates a form field as a real currency code after normalisation.
const currencyCodeTag = "currency_code"

// registerValidators installs the custom binding tags on gin's validator.
func registerValidators(registry ports.CurrencyRegistry) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation(currencyCodeTag, func(fl validator.FieldLevel) bool {
		return registry.IsValidCode(domain.NormalizeCode(fl.Field().String()))
	})
}
