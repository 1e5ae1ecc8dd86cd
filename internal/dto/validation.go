package dto

import (
	"regexp"
	"strings"
	"sync"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

var registerOnce sync.Once

// RegisterValidators installs the custom tags used by the rates query on gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
			return
		}
		if err = v.RegisterValidation("currency_filter", validateCurrencyFilter); err != nil {
			return
		}
		err = v.RegisterValidation("currency_list", validateCurrencyList)
	})
	return err
}

// validateCurrencyCode accepts a three-letter code in any case, but not the "All" wildcard.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return isCurrencyCode(strings.TrimSpace(fl.Field().String()))
}

// validateCurrencyFilter accepts a three-letter code or the "All" wildcard, in any case.
func validateCurrencyFilter(fl validator.FieldLevel) bool {
	code := strings.TrimSpace(fl.Field().String())
	return strings.EqualFold(code, domain.AllCurrencies) || isCurrencyCode(code)
}

// validateCurrencyList accepts a comma-separated list of three-letter codes. Blank entries are ignored.
func validateCurrencyList(fl validator.FieldLevel) bool {
	for _, part := range strings.Split(fl.Field().String(), ",") {
		part = strings.TrimSpace(part)
		if part != "" && !isCurrencyCode(part) {
			return false
		}
	}
	return true
}

// isCurrencyCode reports whether code is three letters other than the "All" wildcard.
func isCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code) && !strings.EqualFold(code, domain.AllCurrencies)
}
