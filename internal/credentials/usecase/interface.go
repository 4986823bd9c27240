// Package usecase defines the interfaces and implementations for credential vault use cases.
// Use cases orchestrate between the field cipher and repositories to store website
// credentials with encrypted password and phone fields.
package usecase

import (
	"context"

	"github.com/google/uuid"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
)

// CredentialRepository defines the interface for Credential persistence operations.
type CredentialRepository interface {
	Create(ctx context.Context, credential *credentialsDomain.Credential) error
	ListByWebsite(ctx context.Context, website string) ([]*credentialsDomain.Credential, error)
	GetByID(ctx context.Context, credentialID uuid.UUID) (*credentialsDomain.Credential, error)
}

// CredentialUseCase defines the interface for credential vault business logic.
//
// List returns the stored records as persisted: password and phone fields are
// cipher envelopes, not plaintext and not masked. This differs from the cards
// family, which masks list views — preserved inconsistency, not an oversight.
type CredentialUseCase interface {
	Create(ctx context.Context, website, username, password, phone, securityQuestion string) (*credentialsDomain.Credential, error)
	ListByWebsite(ctx context.Context, website string) ([]*credentialsDomain.Credential, error)
}
