// Package mocks provides mock implementations for testing card use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
)

// MockCardRepository is a mock implementation of CardRepository for testing.
type MockCardRepository struct {
	mock.Mock
}

// Create mocks the Create method of CardRepository.
func (m *MockCardRepository) Create(ctx context.Context, card *cardsDomain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// ListByOwner mocks the ListByOwner method of CardRepository.
func (m *MockCardRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*cardsDomain.Card, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardsDomain.Card), args.Error(1)
}

// GetByID mocks the GetByID method of CardRepository.
func (m *MockCardRepository) GetByID(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardsDomain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardsDomain.Card), args.Error(1)
}

// UpdateExpiry mocks the UpdateExpiry method of CardRepository.
func (m *MockCardRepository) UpdateExpiry(
	ctx context.Context,
	cardID uuid.UUID,
	ownerID string,
	expiryDate string,
) (*cardsDomain.Card, error) {
	args := m.Called(ctx, cardID, ownerID, expiryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardsDomain.Card), args.Error(1)
}

// Delete mocks the Delete method of CardRepository.
func (m *MockCardRepository) Delete(ctx context.Context, cardID uuid.UUID, ownerID string) error {
	args := m.Called(ctx, cardID, ownerID)
	return args.Error(0)
}
