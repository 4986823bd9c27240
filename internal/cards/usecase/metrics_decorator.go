package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	"github.com/allisson/cardvault/internal/metrics"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for card creation operations.
func (c *cardUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID, cardNumber, cvv, expiryDate string,
) (*cardsDomain.Card, error) {
	start := time.Now()
	card, err := c.next.Create(ctx, ownerID, cardNumber, cvv, expiryDate)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_create", status)
	c.metrics.RecordDuration(ctx, "cards", "card_create", time.Since(start), status)

	return card, err
}

// List records metrics for card listing operations.
func (c *cardUseCaseWithMetrics) List(
	ctx context.Context,
	ownerID string,
) ([]*cardsDomain.Card, error) {
	start := time.Now()
	cards, err := c.next.List(ctx, ownerID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_list", status)
	c.metrics.RecordDuration(ctx, "cards", "card_list", time.Since(start), status)

	return cards, err
}

// UpdateExpiry records metrics for expiry update operations.
func (c *cardUseCaseWithMetrics) UpdateExpiry(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
	expiryDate string,
) (*cardsDomain.Card, error) {
	start := time.Now()
	card, err := c.next.UpdateExpiry(ctx, cardID, ownerID, expiryDate)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_update_expiry", status)
	c.metrics.RecordDuration(ctx, "cards", "card_update_expiry", time.Since(start), status)

	return card, err
}

// Delete records metrics for card deletion operations.
func (c *cardUseCaseWithMetrics) Delete(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
) error {
	start := time.Now()
	err := c.next.Delete(ctx, cardID, ownerID)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_delete", status)
	c.metrics.RecordDuration(ctx, "cards", "card_delete", time.Since(start), status)

	return err
}
