package middleware

import (
	"fmt"
	"regexp"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// RegisterValidators adds the ledger's custom binding tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("entrytype", validateEntryType); err != nil {
		return err
	}
	return v.RegisterValidation("currencycode", validateCurrencyCode)
}

// entrytype: debt or loan
func validateEntryType(fl validator.FieldLevel) bool {
	return domain.EntryType(fl.Field().String()).IsValid()
}

// currencycode: 2-10 uppercase letters or digits
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}
