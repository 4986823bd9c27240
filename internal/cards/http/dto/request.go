// Package dto provides data transfer objects for card HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/cardvault/internal/validation"
)

// CreateCardRequest contains the parameters for storing a new card.
// All four fields are required; number and CVV are encrypted before persistence.
type CreateCardRequest struct {
	OwnerID    string `json:"owner_id"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Validate checks if the create card request is valid.
func (r *CreateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OwnerID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.CardNumber, validation.Required, customValidation.CardNumber),
		validation.Field(&r.ExpiryDate, validation.Required, customValidation.ExpiryDate),
		validation.Field(&r.CVV, validation.Required, customValidation.CVV),
	)
}

// UpdateCardRequest contains the parameters for replacing a card's expiry date.
// The card id comes from the URL parameter, not the request body.
type UpdateCardRequest struct {
	OwnerID    string `json:"owner_id"`
	ExpiryDate string `json:"expiry_date"`
}

// Validate checks if the update card request is valid.
func (r *UpdateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OwnerID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.ExpiryDate, validation.Required, customValidation.ExpiryDate),
	)
}
