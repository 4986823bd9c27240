// Package mocks provides mock implementations of reveal record sources for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	cardsDomain "github.com/allisson/cardvault/internal/cards/domain"
	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
)

// MockCardSource is a mock implementation of CardSource for testing.
type MockCardSource struct {
	mock.Mock
}

// GetByID mocks the GetByID method of CardSource.
func (m *MockCardSource) GetByID(ctx context.Context, cardID uuid.UUID) (*cardsDomain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardsDomain.Card), args.Error(1)
}

// MockCredentialSource is a mock implementation of CredentialSource for testing.
type MockCredentialSource struct {
	mock.Mock
}

// GetByID mocks the GetByID method of CredentialSource.
func (m *MockCredentialSource) GetByID(
	ctx context.Context,
	credentialID uuid.UUID,
) (*credentialsDomain.Credential, error) {
	args := m.Called(ctx, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.Credential), args.Error(1)
}
