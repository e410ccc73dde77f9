// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"financial-agent/internal/marketdata"
)

// TagTicker validates an exchange symbol, case-insensitively.
const TagTicker = "ticker"

var once sync.Once

// Register installs the custom tags on gin's default validator. Safe to call
// more than once.
func Register() error {
	var err error
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation(TagTicker, validateTicker)
	})
	return err
}

func validateTicker(fl validator.FieldLevel) bool {
	_, ok := marketdata.NormalizeTicker(fl.Field().String())
	return ok
}
