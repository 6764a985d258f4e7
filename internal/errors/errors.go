package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid email or password, Please try again")
	// ErrInvalidRegistration is returned when registration input fails the email or password rules.
	ErrInvalidRegistration = errors.New("Invalid email or password, Please try again")
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("User already exists. Please login.")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("User does not exist!")
	// ErrPasswordMismatch is returned when the new password and its confirmation differ.
	ErrPasswordMismatch = errors.New("Password mismatch")
	// ErrPasswordTooShort is returned when a new password fails the length rule.
	ErrPasswordTooShort = errors.New("The password is too short")
	// ErrInvalidEmail is returned when an email fails the address pattern.
	ErrInvalidEmail = errors.New("Invalid email given")

	// ErrTokenMissing is returned when no Authorization header is present.
	ErrTokenMissing = errors.New("No token, please provide a token")
	// ErrTokenMalformed is returned when a token fails signature or structure checks.
	ErrTokenMalformed = errors.New("Invalid token. Please register or login")
	// ErrTokenExpired is returned when a token is past its embedded expiry.
	ErrTokenExpired = errors.New("Expired token. Please login to get a new token")
	// ErrTokenRevoked is returned when a token is on the revocation list.
	ErrTokenRevoked = errors.New("Revoked token. Please login to get a new token")

	// ErrCategoryNotFound is returned when a category is absent or not owned by the caller.
	ErrCategoryNotFound = errors.New("No category found")
	// ErrCategoryExists is returned when a category name is already taken by the same owner.
	ErrCategoryExists = errors.New("Category already exists")
	// ErrRecipeNotFound is returned when a recipe is absent from the caller's category.
	ErrRecipeNotFound = errors.New("No recipe found")
	// ErrRecipeExists is returned when a recipe title is already taken within the category.
	ErrRecipeExists = errors.New("Recipe already exists")
	// ErrRecipeCategoryMissing is returned when a recipe operation names a category
	// the caller does not own.
	ErrRecipeCategoryMissing = errors.New("Category does not exist")
)

// ValidationKind identifies which ordered name-validation check failed.
type ValidationKind int

const (
	// KindNotAString rejects non-string JSON values for a name field.
	KindNotAString ValidationKind = iota
	// KindRequired rejects empty or all-whitespace names.
	KindRequired
	// KindInvalidCharacters rejects names containing disallowed characters.
	KindInvalidCharacters
	// KindContainsDigits rejects names containing decimal digits.
	KindContainsDigits
)

// ValidationError carries the first failed validation check for a name or title.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Not-found and not-owned
// are deliberately the same 404 so callers cannot probe other users' data.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Kind == KindRequired {
			return NewHTTPError(http.StatusUnprocessableEntity, validationErr.Message)
		}
		return NewHTTPError(http.StatusBadRequest, validationErr.Message)
	}

	switch {
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrRecipeNotFound),
		errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrRecipeExists),
		errors.Is(err, ErrRecipeCategoryMissing),
		errors.Is(err, ErrInvalidRegistration),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenMissing),
		errors.Is(err, ErrTokenMalformed),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenRevoked):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
