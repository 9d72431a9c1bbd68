package crypto

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	return key
}

func TestNewCodec_KeySize(t *testing.T) {
	_, err := NewCodec([]byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)
	require.NotNil(t, codec)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	tests := []string{
		"John Smith",
		"Chronic hypertension, stage 2",
		"ünïcödé ⚕",
		"a",
	}

	for _, plaintext := range tests {
		token, err := codec.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, token)

		decrypted, err := codec.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCodec_EmptyPassthrough(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	token, err := codec.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, token)

	plaintext, err := codec.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestCodec_FreshNoncePerCall(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	first, err := codec.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := codec.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, token := range []string{first, second} {
		decrypted, err := codec.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, "same plaintext", decrypted)
	}
}

func TestCodec_TamperDetection(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	token, err := codec.Encrypt("integrity matters")
	require.NoError(t, err)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err)

	// Flip one byte at every position; GCM must reject each variant.
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, err := codec.Decrypt(hex.EncodeToString(tampered))
		assert.ErrorIs(t, err, ErrDecryptionFailed, "byte %d", i)
	}
}

func TestCodec_MalformedToken(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"not hex", "zzzz"},
		{"too short", "0a0b0c"},
		{"truncated nonce", hex.EncodeToString([]byte("tiny"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.token)
			assert.True(t, errors.Is(err, ErrDecryptionFailed))
		})
	}
}

func TestCodec_WrongKey(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	otherKey := testKey(t)
	otherKey[0] ^= 0xff
	other, err := NewCodec(otherKey)
	require.NoError(t, err)

	token, err := codec.Encrypt("keyed to the first codec")
	require.NoError(t, err)

	_, err = other.Decrypt(token)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
