package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	credentialsDomain "github.com/allisson/cardvault/internal/credentials/domain"
)

// MockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type MockCredentialUseCase struct {
	mock.Mock
}

// Create mocks the Create method of CredentialUseCase.
func (m *MockCredentialUseCase) Create(
	ctx context.Context,
	website, username, password, phone, securityQuestion string,
) (*credentialsDomain.Credential, error) {
	args := m.Called(ctx, website, username, password, phone, securityQuestion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialsDomain.Credential), args.Error(1)
}

// ListByWebsite mocks the ListByWebsite method of CredentialUseCase.
func (m *MockCredentialUseCase) ListByWebsite(
	ctx context.Context,
	website string,
) ([]*credentialsDomain.Credential, error) {
	args := m.Called(ctx, website)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credentialsDomain.Credential), args.Error(1)
}
