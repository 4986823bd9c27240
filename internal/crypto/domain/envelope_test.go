package domain

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	iv := make([]byte, IVSize)
	ciphertext := []byte("0123456789abcdef")
	encoded := hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext)

	t.Run("well-formed envelope", func(t *testing.T) {
		env, err := ParseEnvelope(encoded)
		require.NoError(t, err)
		assert.Equal(t, iv, env.IV)
		assert.Equal(t, ciphertext, env.Ciphertext)
	})

	t.Run("round trip", func(t *testing.T) {
		env, err := ParseEnvelope(encoded)
		require.NoError(t, err)
		assert.Equal(t, encoded, env.String())
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := ParseEnvelope(hex.EncodeToString(iv))
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("invalid iv hex", func(t *testing.T) {
		_, err := ParseEnvelope("zzzz:" + hex.EncodeToString(ciphertext))
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("iv too short", func(t *testing.T) {
		_, err := ParseEnvelope(hex.EncodeToString(iv[:8]) + ":" + hex.EncodeToString(ciphertext))
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("invalid ciphertext hex", func(t *testing.T) {
		_, err := ParseEnvelope(hex.EncodeToString(iv) + ":not-hex")
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("empty ciphertext", func(t *testing.T) {
		_, err := ParseEnvelope(hex.EncodeToString(iv) + ":")
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})
}

func TestCiphertextHex(t *testing.T) {
	t.Run("returns ciphertext segment", func(t *testing.T) {
		segment, err := CiphertextHex("00112233:deadbeef")
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", segment)
	})

	t.Run("splits on first colon only", func(t *testing.T) {
		segment, err := CiphertextHex("aa:bb:cc")
		require.NoError(t, err)
		assert.Equal(t, "bb:cc", segment)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := CiphertextHex(strings.Repeat("ab", 16))
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("empty segment", func(t *testing.T) {
		_, err := CiphertextHex("aabb:")
		assert.ErrorIs(t, err, ErrMalformedEnvelope)
	})
}
