// Package mocks provides mock implementations for testing credential use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
)

// MockCredentialRepository is a mock implementation of CredentialRepository for testing.
type MockCredentialRepository struct {
	mock.Mock
}

// Create mocks the Create method of CredentialRepository.
func (m *MockCredentialRepository) Create(
	ctx context.Context,
	credential *credentialsDomain.Credential,
) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

// ListByWebsite mocks the ListByWebsite method of CredentialRepository.
func (m *MockCredentialRepository) ListByWebsite(
	ctx context.Context,
	website string,
) ([]*credentialsDomain.Credential, error) {
	args := m.Called(ctx, website)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credentialsDomain.Credential), args.Error(1)
}

// GetByID mocks the GetByID method of CredentialRepository.
func (m *MockCredentialRepository) GetByID(
	ctx context.Context,
	credentialID uuid.UUID,
) (*credentialsDomain.Credential, error) {
	args := m.Called(ctx, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.Credential), args.Error(1)
}
