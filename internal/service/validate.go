package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/identity"
)

// NewValidator returns a validator with the booking-specific tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	// kr_mobile is statically known to register
	_ = v.RegisterValidation("kr_mobile", func(fl validator.FieldLevel) bool {
		return identity.ValidateContact(fl.Field().String()) == nil
	})

	return v
}

func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "kr_mobile":
		return field + " must be a Korean mobile number (010XXXXXXXX)"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
