package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Postgres text columns cannot hold NUL.
	err := v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the validate struct tags of a request DTO.
func Validate(req any) error {
	return validate.Struct(req)
}

// Failed reports whether err holds a field that failed the tag rule.
func Failed(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	return lo.ContainsBy(verrs, func(fe validator.FieldError) bool {
		return fe.Tag() == tag
	})
}

// MissingRequired reports whether err was caused by an absent or empty
// required field.
func MissingRequired(err error) bool {
	return Failed(err, "required")
}
