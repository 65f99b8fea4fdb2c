package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/and161185/mindmates/internal/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check validates a struct and wraps failures with errs.ErrValidation.
func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// checkVar validates a single value against tag.
func checkVar(field string, v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("%w: %s: %s", errs.ErrValidation, field, describe(err))
	}
	return nil
}

func validationError(err error) error {
	return fmt.Errorf("%w: %s", errs.ErrValidation, describe(err))
}

func describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		p := fe.Namespace() + " " + fe.Tag()
		if fe.Param() != "" {
			p += "=" + fe.Param()
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

type errUnknownMood string

func (e errUnknownMood) Error() string { return "unknown mood " + string(e) }
