// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher defines the interface for password hashing and verification.
// The stored credential is the pair (hash, key): a keyed hash of the password
// and the random key it was computed with, which stands in for a salt.
type CredentialHasher interface {
	// CreateHash generates a fresh random key and returns the keyed hash of
	// the password together with that key. Callers must validate that the
	// password is non-empty before calling.
	CreateHash(password string) (hash, key []byte, err error)

	// Verify recomputes the keyed hash of password with storedKey and
	// compares it against storedHash in constant time. Any length mismatch
	// is an ordinary non-match, never an error.
	Verify(password string, storedHash, storedKey []byte) bool
}
