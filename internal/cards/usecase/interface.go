// Package usecase defines the interfaces and implementations for card vault use cases.
// Use cases orchestrate between the field cipher and repositories to store card
// records with encrypted number and CVV fields.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
)

// CardRepository defines the interface for Card persistence operations.
type CardRepository interface {
	Create(ctx context.Context, card *cardsDomain.Card) error
	ListByOwner(ctx context.Context, ownerID string) ([]*cardsDomain.Card, error)
	GetByID(ctx context.Context, cardID uuid.UUID) (*cardsDomain.Card, error)
	UpdateExpiry(ctx context.Context, cardID uuid.UUID, ownerID string, expiryDate string) (*cardsDomain.Card, error)
	Delete(ctx context.Context, cardID uuid.UUID, ownerID string) error
}

// CardUseCase defines the interface for card vault business logic.
//
// Stored records never leave the use case with plaintext number or CVV; the
// reveal path is served separately and decrypts on demand.
type CardUseCase interface {
	Create(ctx context.Context, ownerID, cardNumber, cvv, expiryDate string) (*cardsDomain.Card, error)
	List(ctx context.Context, ownerID string) ([]*cardsDomain.Card, error)
	UpdateExpiry(ctx context.Context, cardID uuid.UUID, ownerID string, expiryDate string) (*cardsDomain.Card, error)
	Delete(ctx context.Context, cardID uuid.UUID, ownerID string) error
}
