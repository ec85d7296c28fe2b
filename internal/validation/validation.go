// Package validation configures go-playground/validator for request payloads.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that reports json field names, understands
// decimal.Decimal amounts and provides the "digits" tag.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return sf.Name
		}
		return name
	})

	// Amounts are compared as float64; precision loss is irrelevant for bounds.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return s != ""
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: registering %q: %v", tag, err))
	}
}

// Errors maps each failing json field to a readable message. Errors that are
// not validation errors are reported under the empty key.
func Errors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		msg := fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		if e.Param() != "" {
			msg = fmt.Sprintf("Field '%s' failed on the '%s=%s' tag", e.Field(), e.Tag(), e.Param())
		}
		out[e.Field()] = msg
	}
	return out
}
