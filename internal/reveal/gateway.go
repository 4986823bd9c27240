// Package reveal implements the single narrow path that returns decrypted
// plaintext for an identified record. Both record families share the same
// dispatcher shape: validate the identifier's syntax before touching storage,
// fetch by id, decrypt the designated field, return the plaintext exactly
// once. The plaintext is never cached and never logged.
package reveal

import (
	"context"

	"github.com/google/uuid"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// CardRevealer exposes the card side of the gateway to HTTP handlers.
type CardRevealer interface {
	CardNumber(ctx context.Context, rawID string) (string, error)
}

// CredentialRevealer exposes the credential side of the gateway to HTTP handlers.
type CredentialRevealer interface {
	CredentialPassword(ctx context.Context, rawID string) (string, error)
}

// CardSource fetches card records by bare id.
type CardSource interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*cardsDomain.Card, error)
}

// CredentialSource fetches credential records by bare id.
type CredentialSource interface {
	GetByID(ctx context.Context, credentialID uuid.UUID) (*credentialsDomain.Credential, error)
}

// Gateway dispatches reveal requests for both record families.
//
// Lookups are by id alone, with no ownership check — a caller holding any
// valid card id can reveal that card's number regardless of who stored it.
// This matches the preserved behavior; it is flagged here and in the tests
// rather than silently tightened.
type Gateway struct {
	cards       CardSource
	credentials CredentialSource
	cipher      cryptoService.FieldCipher
}

// NewGateway creates a reveal gateway over the given record sources and cipher.
func NewGateway(cards CardSource, credentials CredentialSource, cipher cryptoService.FieldCipher) *Gateway {
	return &Gateway{
		cards:       cards,
		credentials: credentials,
		cipher:      cipher,
	}
}

// ParseID validates the syntactic form of a record identifier before any
// storage call. A malformed id reports ErrInvalidIdentifier, distinct from
// the not-found error a well-formed but absent id produces.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrInvalidIdentifier, "malformed record id")
	}
	return id, nil
}

// CardNumber reveals the decrypted card number for the identified card.
func (g *Gateway) CardNumber(ctx context.Context, rawID string) (string, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return "", err
	}

	card, err := g.cards.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	return g.cipher.Decrypt(card.CardNumber)
}

// CredentialPassword reveals the decrypted password for the identified
// credential. Only the password is revealed through this path; the phone
// envelope stays sealed.
func (g *Gateway) CredentialPassword(ctx context.Context, rawID string) (string, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return "", err
	}

	credential, err := g.credentials.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	return g.cipher.Decrypt(credential.Password)
}
