package core

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate normalizes d and checks it can be saved.
// Content that is empty after trimming is rejected with a *ValidationError.
func Validate(d Draft) (Draft, error) {
	d = d.Normalize()
	if err := Validator().Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return d, &ValidationError{
				Field:  strings.ToLower(fe.Field()),
				Reason: reason(fe.Tag()),
			}
		}
		return d, err
	}
	return d, nil
}

func reason(tag string) string {
	switch tag {
	case "required":
		return "must not be empty"
	default:
		return "is invalid (" + tag + ")"
	}
}
