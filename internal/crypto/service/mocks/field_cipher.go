// Package mocks provides mock implementations of crypto services for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockFieldCipher is a mock implementation of FieldCipher for testing.
type MockFieldCipher struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of FieldCipher.
func (m *MockFieldCipher) Encrypt(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of FieldCipher.
func (m *MockFieldCipher) Decrypt(envelope string) (string, error) {
	args := m.Called(envelope)
	return args.String(0), args.Error(1)
}
