package commands

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCreateEncryptionKey(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer

		err := RunCreateEncryptionKey(&out)
		require.NoError(t, err)

		output := out.String()
		require.Contains(t, output, "ENCRYPTION_KEY=\"")

		// Extract the encoded key from the output
		start := strings.Index(output, "ENCRYPTION_KEY=\"") + len("ENCRYPTION_KEY=\"")
		end := strings.Index(output[start:], "\"")
		require.Greater(t, end, 0)
		encoded := output[start : start+end]

		// The key decodes to exactly 32 bytes
		key, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		require.Len(t, key, 32)
	})

	t.Run("generates-unique-keys", func(t *testing.T) {
		var first, second bytes.Buffer

		require.NoError(t, RunCreateEncryptionKey(&first))
		require.NoError(t, RunCreateEncryptionKey(&second))

		require.NotEqual(t, first.String(), second.String())
	})
}
