package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_CreateHashAndVerify(t *testing.T) {
	hasher := NewHMACHasher()

	hash, key, err := hasher.CreateHash("correct horse battery staple")
	require.NoError(t, err)
	assert.Len(t, key, 64)
	assert.Len(t, hash, 64) // SHA-512 digest size

	assert.True(t, hasher.Verify("correct horse battery staple", hash, key))
	assert.False(t, hasher.Verify("correct horse battery stapl", hash, key))
	assert.False(t, hasher.Verify("", hash, key))
}

func TestHMACHasher_CreateHash_FreshKeyPerCall(t *testing.T) {
	hasher := NewHMACHasher()

	hash1, key1, err := hasher.CreateHash("same password")
	require.NoError(t, err)
	hash2, key2, err := hasher.CreateHash("same password")
	require.NoError(t, err)

	// A fresh random key per call makes equal passwords hash differently.
	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, hash1, hash2)

	// Each hash still verifies under its own key.
	assert.True(t, hasher.Verify("same password", hash1, key1))
	assert.True(t, hasher.Verify("same password", hash2, key2))

	// But not under the other's key.
	assert.False(t, hasher.Verify("same password", hash1, key2))
}

func TestHMACHasher_Verify_DegenerateInputs(t *testing.T) {
	hasher := NewHMACHasher()

	hash, key, err := hasher.CreateHash("secret")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("secret", nil, key))
	assert.False(t, hasher.Verify("secret", hash, nil))
	assert.False(t, hasher.Verify("secret", []byte{}, []byte{}))
	assert.False(t, hasher.Verify("secret", hash[:32], key)) // truncated hash
}
