package secrets

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = hex.EncodeToString(make([]byte, 32))

func TestEncryptDecryptRoundTrip(t *testing.T) {
	e, err := NewAESEncryptor(testKey)
	require.NoError(t, err)

	cipher, err := e.Encrypt("sip-password-1")
	require.NoError(t, err)
	assert.NotContains(t, cipher, "sip-password-1")

	plain, err := e.Decrypt(cipher)
	require.NoError(t, err)
	assert.Equal(t, "sip-password-1", plain)
}

func TestEncryptNonDeterministic(t *testing.T) {
	e, err := NewAESEncryptor(testKey)
	require.NoError(t, err)

	a, err := e.Encrypt("same")
	require.NoError(t, err)
	b, err := e.Encrypt("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewAESEncryptorRejectsBadKeys(t *testing.T) {
	_, err := NewAESEncryptor("not-hex")
	assert.Error(t, err)

	_, err = NewAESEncryptor("abcd")
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	e, err := NewAESEncryptor(testKey)
	require.NoError(t, err)

	_, err = e.Decrypt("not base64!!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = e.Decrypt("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	// Tampered ciphertext fails authentication.
	cipher, err := e.Encrypt("value")
	require.NoError(t, err)
	tampered := "A" + cipher[1:]
	if tampered == cipher {
		tampered = "B" + cipher[1:]
	}
	_, err = e.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
