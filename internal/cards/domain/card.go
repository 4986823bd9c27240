// Package domain defines the core domain model for stored payment cards.
// Card numbers and CVVs are persisted only as cipher envelopes; the expiry
// date is the single mutable field.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a stored payment card with encrypted sensitive fields.
type Card struct {
	// ID is the unique identifier, generated by the store on creation.
	ID uuid.UUID
	// OwnerID identifies the user who created the record; set once, never mutated.
	// Every mutation must present a matching owner id — a mismatch is reported
	// as not found, indistinguishable from an absent record.
	OwnerID string
	// CardNumber is the cipher envelope of the raw digit string.
	CardNumber string
	// CVV is the cipher envelope of the raw verification value.
	CVV string
	// ExpiryDate is the plaintext MM/YY string, the only mutable field.
	ExpiryDate string
	// CreatedAt is the UTC timestamp when the card was stored.
	CreatedAt time.Time
}

// NewCard creates a card record from already-encrypted field envelopes.
func NewCard(ownerID, encryptedNumber, encryptedCVV, expiryDate string) *Card {
	return &Card{
		ID:         uuid.Must(uuid.NewV7()),
		OwnerID:    ownerID,
		CardNumber: encryptedNumber,
		CVV:        encryptedCVV,
		ExpiryDate: expiryDate,
		CreatedAt:  time.Now().UTC(),
	}
}
