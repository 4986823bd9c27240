package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
)

// MockCardUseCase is a mock implementation of CardUseCase for testing.
type MockCardUseCase struct {
	mock.Mock
}

// Create mocks the Create method of CardUseCase.
func (m *MockCardUseCase) Create(
	ctx context.Context,
	ownerID, cardNumber, cvv, expiryDate string,
) (*cardsDomain.Card, error) {
	args := m.Called(ctx, ownerID, cardNumber, cvv, expiryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardsDomain.Card), args.Error(1)
}

// List mocks the List method of CardUseCase.
func (m *MockCardUseCase) List(ctx context.Context, ownerID string) ([]*cardsDomain.Card, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardsDomain.Card), args.Error(1)
}

// UpdateExpiry mocks the UpdateExpiry method of CardUseCase.
func (m *MockCardUseCase) UpdateExpiry(
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

// Delete mocks the Delete method of CardUseCase.
func (m *MockCardUseCase) Delete(ctx context.Context, cardID uuid.UUID, ownerID string) error {
	args := m.Called(ctx, cardID, ownerID)
	return args.Error(0)
}
