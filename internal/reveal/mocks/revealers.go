package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCardRevealer is a mock implementation of CardRevealer for testing.
type MockCardRevealer struct {
	mock.Mock
}

// CardNumber mocks the CardNumber method of CardRevealer.
func (m *MockCardRevealer) CardNumber(ctx context.Context, rawID string) (string, error) {
	args := m.Called(ctx, rawID)
	return args.String(0), args.Error(1)
}

// MockCredentialRevealer is a mock implementation of CredentialRevealer for testing.
type MockCredentialRevealer struct {
	mock.Mock
}

// CredentialPassword mocks the CredentialPassword method of CredentialRevealer.
func (m *MockCredentialRevealer) CredentialPassword(ctx context.Context, rawID string) (string, error) {
	args := m.Called(ctx, rawID)
	return args.String(0), args.Error(1)
}
