package dto

import (
	"time"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
)

// CreateCredentialResponse acknowledges a stored credential with a masked
// tail of the submitted password.
type CreateCredentialResponse struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// MapCredentialToCreateResponse converts a just-created credential to an API
// response. The masked tail comes from the raw password input, which the
// create path still holds.
func MapCredentialToCreateResponse(
	credential *credentialsDomain.Credential,
	plaintextPassword string,
) CreateCredentialResponse {
	return CreateCredentialResponse{
		ID:       credential.ID.String(),
		Password: cryptoService.MaskTail(plaintextPassword),
	}
}

// CredentialResponse represents a stored credential in list responses.
//
// Password and phone carry the stored cipher envelopes as-is: list views for
// this family return envelopes, not plaintext and not masked values. This is
// preserved behavior, inconsistent with the cards family on purpose.
type CredentialResponse struct {
	ID               string    `json:"id"`
	Website          string    `json:"website"`
	Username         string    `json:"username"`
	Password         string    `json:"password"`
	Phone            string    `json:"phone"`
	SecurityQuestion string    `json:"security_question"`
	CreatedAt        time.Time `json:"created_at"`
}

// ListCredentialsResponse represents a list of stored credentials in API responses.
type ListCredentialsResponse struct {
	Data []CredentialResponse `json:"data"`
}

// MapCredentialsToListResponse converts a slice of stored credentials to a
// list response, passing envelope fields through untouched.
func MapCredentialsToListResponse(credentials []*credentialsDomain.Credential) ListCredentialsResponse {
	data := make([]CredentialResponse, 0, len(credentials))
	for _, credential := range credentials {
		data = append(data, CredentialResponse{
			ID:               credential.ID.String(),
			Website:          credential.Website,
			Username:         credential.Username,
			Password:         credential.Password,
			Phone:            credential.Phone,
			SecurityQuestion: credential.SecurityQuestion,
			CreatedAt:        credential.CreatedAt,
		})
	}

	return ListCredentialsResponse{
		Data: data,
	}
}

// RevealCredentialResponse carries the decrypted password. Returned exactly
// once per reveal call; never logged or cached. The phone field is never
// revealed.
type RevealCredentialResponse struct {
	Password string `json:"password"`
}
