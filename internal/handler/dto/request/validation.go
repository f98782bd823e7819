package request

import (
	"reflect"
	"strings"
	"sync"

	"pitch-booking/internal/domain/club"
	"pitch-booking/internal/pkg/daytime"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator:
// timeofday (HH:MM[:SS]), date (YYYY-MM-DD), decimal and workingdays.
// Field errors are reported by their json names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("timeofday", isTimeOfDay)
		_ = v.RegisterValidation("date", isDate)
		_ = v.RegisterValidation("decimal", isDecimal)
		_ = v.RegisterValidation("workingdays", isWorkingDays)
	})
}

func jsonName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func isTimeOfDay(fl validator.FieldLevel) bool {
	_, err := daytime.Parse(fl.Field().String())
	return err == nil
}

func isDate(fl validator.FieldLevel) bool {
	_, err := daytime.ParseDate(fl.Field().String())
	return err == nil
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func isWorkingDays(fl validator.FieldLevel) bool {
	m, ok := fl.Field().Interface().(map[string]bool)
	if !ok {
		return false
	}
	_, err := club.ParseWorkingDays(m)
	return err == nil
}
