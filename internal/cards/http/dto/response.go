package dto

import (
	"time"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
)

// CardResponse represents a stored card in API responses.
// The card number is always masked; the CVV never appears in any response.
type CardResponse struct {
	ID         string    `json:"id"`
	CardNumber string    `json:"card_number"`
	ExpiryDate string    `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListCardsResponse represents a list of stored cards in API responses.
type ListCardsResponse struct {
	Data []CardResponse `json:"data"`
}

// MapCardToCreateResponse converts a just-created card to an API response.
// The masked tail comes from the submitted plaintext digits, which the create
// path still holds. List and update responses mask over the stored ciphertext
// instead, so the same record shows a different tail there.
func MapCardToCreateResponse(card *cardsDomain.Card, plaintextNumber string) CardResponse {
	return CardResponse{
		ID:         card.ID.String(),
		CardNumber: cryptoService.MaskTail(plaintextNumber),
		ExpiryDate: card.ExpiryDate,
		CreatedAt:  card.CreatedAt,
	}
}

// MapCardToResponse converts a stored card to an API response without
// decrypting: the masked tail comes from the envelope's ciphertext hex.
func MapCardToResponse(card *cardsDomain.Card) (CardResponse, error) {
	masked, err := cryptoService.MaskEnvelopeTail(card.CardNumber)
	if err != nil {
		return CardResponse{}, err
	}

	return CardResponse{
		ID:         card.ID.String(),
		CardNumber: masked,
		ExpiryDate: card.ExpiryDate,
		CreatedAt:  card.CreatedAt,
	}, nil
}

// MapCardsToListResponse converts a slice of stored cards to a list response.
func MapCardsToListResponse(cards []*cardsDomain.Card) (ListCardsResponse, error) {
	data := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		response, err := MapCardToResponse(card)
		if err != nil {
			return ListCardsResponse{}, err
		}
		data = append(data, response)
	}

	return ListCardsResponse{
		Data: data,
	}, nil
}

// RevealCardResponse carries the decrypted card number. Returned exactly once
// per reveal call; never logged or cached.
type RevealCardResponse struct {
	CardNumber string `json:"card_number"`
}
