// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"

	"padron/internal/domain/service"
	"padron/internal/errors"
)

// credentialKeyLength is the size of the per-account random key in bytes.
// It doubles as the salt, so it must come from a CSPRNG.
const credentialKeyLength = 64

// hmacHasher is a concrete implementation of the CredentialHasher interface
// using HMAC-SHA512 keyed with a per-account random key.
type hmacHasher struct{}

// NewHMACHasher is the constructor for hmacHasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewHMACHasher() service.CredentialHasher {
	return &hmacHasher{}
}

// CreateHash generates a random 64-byte key and computes the HMAC-SHA512 of
// the password under it. A fresh key per call means hashing the same
// password twice yields unrelated hashes.
func (h *hmacHasher) CreateHash(password string) (hash, key []byte, err error) {
	key = make([]byte, credentialKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate credential key")
	}

	return computeHash(password, key), key, nil
}

// Verify recomputes the keyed hash of password with storedKey and compares
// it against storedHash in constant time. hmac.Equal rejects mismatched
// lengths before comparing and never short-circuits on the bytes.
func (h *hmacHasher) Verify(password string, storedHash, storedKey []byte) bool {
	if len(storedHash) == 0 || len(storedKey) == 0 {
		return false
	}

	return hmac.Equal(computeHash(password, storedKey), storedHash)
}

func computeHash(password string, key []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(password))

	return mac.Sum(nil)
}
