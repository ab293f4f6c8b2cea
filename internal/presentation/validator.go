package presentation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"petstar/internal/domain/apperr"
)

// Validator plugs go-playground/validator into echo.Context.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %w", apperr.Detail(apperr.ErrValidation, "invalid fields: %s",
		strings.Join(fields, ", ")), err)
}
