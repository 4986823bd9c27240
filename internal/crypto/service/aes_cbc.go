package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
)

// AESCBCCipher implements the FieldCipher interface using AES-256-CBC with
// PKCS#7 padding over the "hex(iv):hex(ciphertext)" envelope format.
//
// Each encryption generates a fresh 16-byte IV from crypto/rand, so two calls
// with identical plaintext never produce the same envelope. This is a required
// property of the envelope format, not an optimization: equal envelopes would
// reveal equal plaintexts to anyone with storage access.
//
// CBC provides confidentiality only. Tampering is detected opportunistically
// through padding validation during decryption (ErrDecryptionFailed); the
// format carries no authentication tag, matching the persisted data layout.
//
// Thread safety: the cipher is stateless given the loaded key and safe for
// concurrent use from multiple goroutines.
type AESCBCCipher struct {
	block cipher.Block
}

// NewAESCBC creates a new AES-256-CBC field cipher from the loaded key.
//
// The key has already been validated to be exactly 32 bytes at startup;
// aes.NewCipher re-checks and fails on anything else.
func NewAESCBC(key *cryptoDomain.EncryptionKey) (*AESCBCCipher, error) {
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	return &AESCBCCipher{block: block}, nil
}

// Encrypt encrypts plaintext and returns the persisted envelope form.
//
// A unique 16-byte IV is randomly generated for each call and stored as the
// first envelope segment. The plaintext is PKCS#7-padded to a whole number of
// AES blocks before encryption, so empty input is valid and produces one block.
func (a *AESCBCCipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, cryptoDomain.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(a.block, iv).CryptBlocks(ciphertext, padded)

	envelope := cryptoDomain.Envelope{IV: iv, Ciphertext: ciphertext}
	return envelope.String(), nil
}

// Decrypt parses the envelope, decrypts the ciphertext and strips the padding.
//
// Returns ErrMalformedEnvelope if the envelope does not parse or the
// ciphertext is not a whole number of blocks, and ErrDecryptionFailed if the
// recovered padding is invalid (tampered ciphertext or wrong key). Tampering
// that happens to preserve valid padding yields garbage plaintext instead;
// CBC cannot distinguish that case without an authentication tag.
func (a *AESCBCCipher) Decrypt(envelope string) (string, error) {
	env, err := cryptoDomain.ParseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	if len(env.Ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf(
			"%w: ciphertext length %d is not a block multiple",
			cryptoDomain.ErrMalformedEnvelope,
			len(env.Ciphertext),
		)
	}

	padded := make([]byte, len(env.Ciphertext))
	cipher.NewCBCDecrypter(a.block, env.IV).CryptBlocks(padded, env.Ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// pkcs7Pad appends PKCS#7 padding so the result is a whole number of blocks.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}

	return data[:len(data)-padLen], nil
}
