// Package http provides HTTP handlers for stored card operations.
// Card numbers and CVVs are encrypted at rest; list views are masked and the
// reveal endpoint is the only path returning plaintext.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardvault/internal/cards/http/dto"
	cardsUseCase "github.com/allisson/cardvault/internal/cards/usecase"
	"github.com/allisson/cardvault/internal/httputil"
	"github.com/allisson/cardvault/internal/reveal"
	customValidation "github.com/allisson/cardvault/internal/validation"
)

// CardHandler handles HTTP requests for stored card operations.
type CardHandler struct {
	cardUseCase cardsUseCase.CardUseCase
	revealer    reveal.CardRevealer
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(
	cardUseCase cardsUseCase.CardUseCase,
	revealer reveal.CardRevealer,
	logger *slog.Logger,
) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		revealer:    revealer,
		logger:      logger,
	}
}

// CreateHandler stores a new card with encrypted number and CVV.
// POST /v1/cards
// Returns 201 Created with a masked summary. The masked tail comes from the
// submitted plaintext digits; list views mask over ciphertext instead.
func (h *CardHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCardRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	card, err := h.cardUseCase.Create(
		c.Request.Context(),
		req.OwnerID,
		req.CardNumber,
		req.CVV,
		req.ExpiryDate,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Mask from the submitted plaintext; no plaintext is persisted or logged
	response := dto.MapCardToCreateResponse(card, req.CardNumber)
	c.JSON(http.StatusCreated, response)
}

// ListHandler retrieves all cards for an owner, newest first.
// GET /v1/cards?owner_id=...
// Returns 200 OK with ciphertext-tail masked summaries; CVVs never appear.
func (h *CardHandler) ListHandler(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("owner_id query parameter is required"),
			h.logger,
		)
		return
	}

	// Call use case
	cards, err := h.cardUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response; masking reads the stored envelopes, never decrypts
	response, err := dto.MapCardsToListResponse(cards)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateHandler replaces the expiry date of an owner-matched card.
// PATCH /v1/cards/:cardId
// Returns 200 OK with a masked summary. A wrong owner responds 404, same as
// a wrong id.
func (h *CardHandler) UpdateHandler(c *gin.Context) {
	cardID, err := reveal.ParseID(c.Param("cardId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateCardRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	card, err := h.cardUseCase.UpdateExpiry(c.Request.Context(), cardID, req.OwnerID, req.ExpiryDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response with ciphertext-tail masking
	response, err := dto.MapCardToResponse(card)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes an owner-matched card.
// DELETE /v1/cards/:cardId?owner_id=...
// Returns 204 No Content.
func (h *CardHandler) DeleteHandler(c *gin.Context) {
	cardID, err := reveal.ParseID(c.Param("cardId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	ownerID := c.Query("owner_id")
	if ownerID == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("owner_id query parameter is required"),
			h.logger,
		)
		return
	}

	// Call use case
	if err := h.cardUseCase.Delete(c.Request.Context(), cardID, ownerID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content with empty body
	c.Data(http.StatusNoContent, "application/json", nil)
}

// RevealHandler returns the decrypted card number for the identified card.
// GET /v1/cards/:cardId/reveal
// Returns 200 OK with the plaintext number. Lookup is by id alone, with no
// ownership check (preserved behavior, see the reveal package).
func (h *CardHandler) RevealHandler(c *gin.Context) {
	number, err := h.revealer.CardNumber(c.Request.Context(), c.Param("cardId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RevealCardResponse{CardNumber: number})
}
