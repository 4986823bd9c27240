// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardvault/internal/errors"
)

var (
	// cardNumberRegex matches raw card numbers: 12 to 19 digits.
	cardNumberRegex = regexp.MustCompile(`^[0-9]{12,19}$`)

	// cvvRegex matches card verification values: 3 or 4 digits.
	cvvRegex = regexp.MustCompile(`^[0-9]{3,4}$`)

	// expiryDateRegex matches MM/YY expiry dates.
	expiryDateRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

	// phoneRegex matches phone numbers: optional leading +, then 7 to 15 digits.
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// CardNumber validates raw card number format (12-19 digits)
var CardNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return cardNumberRegex.MatchString(s)
	},
	validation.NewError("validation_card_number", "must be 12 to 19 digits"),
)

// CVV validates card verification value format (3-4 digits)
var CVV = validation.NewStringRuleWithError(
	func(s string) bool {
		return cvvRegex.MatchString(s)
	},
	validation.NewError("validation_cvv", "must be 3 or 4 digits"),
)

// ExpiryDate validates card expiry date format (MM/YY)
var ExpiryDate = validation.NewStringRuleWithError(
	func(s string) bool {
		return expiryDateRegex.MatchString(s)
	},
	validation.NewError("validation_expiry_date", "must be in MM/YY format"),
)

// Phone validates phone number format
var Phone = validation.NewStringRuleWithError(
	func(s string) bool {
		return phoneRegex.MatchString(s)
	},
	validation.NewError("validation_phone", "must be a valid phone number"),
)
