package validation

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar-date format accepted on the wire.
const DateLayout = "2006-01-02"

// RegisterCustomValidators wires domain-specific binding rules into Gin's
// validator engine. Must run once before the router starts serving.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type")
	}

	// txndate accepts YYYY-MM-DD calendar dates. Empty values pass so the
	// rule composes with omitempty/required.
	return v.RegisterValidation("txndate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, err := time.Parse(DateLayout, value)
		return err == nil
	})
}
