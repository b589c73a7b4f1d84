package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSealerRoundTrip(t *testing.T) {
	sealer, err := NewTokenSealer(bytes.Repeat([]byte{0x07}, 32))
	require.NoError(t, err)

	sealed, err := sealer.Seal("ntn_secret_token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "ntn_secret_token")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ntn_secret_token", opened)
}

func TestTokenSealerDistinctNonces(t *testing.T) {
	sealer, err := NewTokenSealer(bytes.Repeat([]byte{0x07}, 32))
	require.NoError(t, err)

	first, err := sealer.Seal("same-token")
	require.NoError(t, err)
	second, err := sealer.Seal("same-token")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenSealerRejectsBadInput(t *testing.T) {
	_, err := NewTokenSealer([]byte("short"))
	require.Error(t, err)

	sealer, err := NewTokenSealer(bytes.Repeat([]byte{0x07}, 32))
	require.NoError(t, err)

	_, err = sealer.Open("not-base64!!!")
	require.Error(t, err)

	_, err = sealer.Open("YWJj") // too short for a nonce
	require.Error(t, err)

	other, err := NewTokenSealer(bytes.Repeat([]byte{0x08}, 32))
	require.NoError(t, err)
	sealed, err := other.Seal("token")
	require.NoError(t, err)
	_, err = sealer.Open(sealed)
	require.Error(t, err, "wrong key must not decrypt")
}
