package service

import (
	"strings"
	"unicode"

	apperrors "recipebook/internal/errors"
)

// disallowedCharacters is the set of characters rejected in category names
// and recipe titles.
const disallowedCharacters = `~!@#$%^&*()_={}|\[]<>?/,;:`

// NameValidator applies the ordered naming rules to a candidate name or
// title and returns the first failure only. The type check (a non-string
// JSON value) happens earlier, at the request binding boundary; see
// handler.bindNameError.
type NameValidator struct {
	field string
}

// NewNameValidator creates a validator whose messages name the given field,
// e.g. "Category name" or "Recipe title".
func NewNameValidator(field string) *NameValidator {
	return &NameValidator{field: field}
}

// Validate checks, in order: emptiness, disallowed characters, digits.
// Later checks are never reached once an earlier one fails. Passing here
// does not imply uniqueness; duplicate detection is the store's job.
func (v *NameValidator) Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return &apperrors.ValidationError{
			Kind:    apperrors.KindRequired,
			Message: v.field + " is required",
		}
	}
	if strings.ContainsAny(name, disallowedCharacters) {
		return &apperrors.ValidationError{
			Kind:    apperrors.KindInvalidCharacters,
			Message: v.field + " should not have special characters",
		}
	}
	if strings.IndexFunc(name, unicode.IsDigit) >= 0 {
		return &apperrors.ValidationError{
			Kind:    apperrors.KindContainsDigits,
			Message: v.field + " should not have numbers",
		}
	}
	return nil
}
