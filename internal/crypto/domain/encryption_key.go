// Package domain defines the cryptographic domain types for field encryption:
// the deployment-wide encryption key and the persisted ciphertext envelope.
package domain

import (
	"encoding/base64"
	"fmt"
)

// KeySize is the required encryption key length in bytes (AES-256).
const KeySize = 32

// EncryptionKey is the single symmetric key used to protect sensitive fields.
//
// The key is loaded once at startup from configuration and passed by
// dependency into every component that needs it; it is never read from
// ambient process state after construction. The key material is read-only
// for the lifetime of the process, so concurrent use requires no locking.
type EncryptionKey struct {
	key []byte
}

// NewEncryptionKey creates an EncryptionKey from raw key material.
// The material must be exactly 32 bytes; any other length is a
// configuration error. The input slice is copied, so callers may zero
// their copy after construction.
func NewEncryptionKey(material []byte) (*EncryptionKey, error) {
	if len(material) != KeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, KeySize, len(material))
	}

	key := make([]byte, KeySize)
	copy(key, material)
	return &EncryptionKey{key: key}, nil
}

// LoadEncryptionKey decodes a base64-encoded key from configuration and
// validates its size. Used at startup; any failure here is fatal and must
// prevent the service from accepting traffic.
func LoadEncryptionKey(encoded string) (*EncryptionKey, error) {
	if encoded == "" {
		return nil, ErrEncryptionKeyNotSet
	}

	material, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncryptionKeyBase64, err)
	}
	defer Zero(material)

	return NewEncryptionKey(material)
}

// Bytes returns the raw key material. The returned slice is the key's
// internal storage; callers must not modify or retain it beyond the call.
func (k *EncryptionKey) Bytes() []byte {
	return k.key
}

// Close clears the key material from memory. The key is unusable afterwards.
func (k *EncryptionKey) Close() {
	Zero(k.key)
	k.key = nil
}
