// Package dto provides data transfer objects for credential HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/cardvault/internal/validation"
)

// CreateCredentialRequest contains the parameters for storing a new website credential.
// All five fields are required; password and phone are encrypted before persistence.
type CreateCredentialRequest struct {
	Website          string `json:"website"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	SecurityQuestion string `json:"security_question"`
}

// Validate checks if the create credential request is valid.
func (r *CreateCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Website, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Username, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Phone, validation.Required, customValidation.Phone),
		validation.Field(&r.SecurityQuestion, validation.Required, customValidation.NotBlank),
	)
}
