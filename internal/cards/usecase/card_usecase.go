package usecase

import (
	"context"

	"github.com/google/uuid"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
	"github.com/allisson/cardvault/internal/database"
)

// cardUseCase implements the CardUseCase interface for managing stored cards.
type cardUseCase struct {
	txManager database.TxManager
	cardRepo  CardRepository
	cipher    cryptoService.FieldCipher
}

// Create encrypts the card number and CVV and persists the new record.
// Each field is encrypted independently, so the two envelopes never share
// an initialization vector.
func (c *cardUseCase) Create(
	ctx context.Context,
	ownerID, cardNumber, cvv, expiryDate string,
) (*cardsDomain.Card, error) {
	encryptedNumber, err := c.cipher.Encrypt(cardNumber)
	if err != nil {
		return nil, err
	}

	encryptedCVV, err := c.cipher.Encrypt(cvv)
	if err != nil {
		return nil, err
	}

	card := cardsDomain.NewCard(ownerID, encryptedNumber, encryptedCVV, expiryDate)

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.cardRepo.Create(txCtx, card)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// List retrieves all cards for an owner. Number and CVV fields remain cipher
// envelopes; callers mask from the envelope, not the plaintext.
func (c *cardUseCase) List(ctx context.Context, ownerID string) ([]*cardsDomain.Card, error) {
	return c.cardRepo.ListByOwner(ctx, ownerID)
}

// UpdateExpiry replaces the expiry date of an owner-matched card.
func (c *cardUseCase) UpdateExpiry(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
	expiryDate string,
) (*cardsDomain.Card, error) {
	return c.cardRepo.UpdateExpiry(ctx, cardID, ownerID, expiryDate)
}

// Delete removes an owner-matched card.
func (c *cardUseCase) Delete(ctx context.Context, cardID uuid.UUID, ownerID string) error {
	return c.cardRepo.Delete(ctx, cardID, ownerID)
}

// NewCardUseCase creates a new card use case instance with the provided dependencies.
func NewCardUseCase(
	txManager database.TxManager,
	cardRepo CardRepository,
	cipher cryptoService.FieldCipher,
) CardUseCase {
	return &cardUseCase{
		txManager: txManager,
		cardRepo:  cardRepo,
		cipher:    cipher,
	}
}
