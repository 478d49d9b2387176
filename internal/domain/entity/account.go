// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core entity of the system, representing a registered person.
// It carries the profile fields exposed through the API together with the
// stored credential material, which never leaves the service layer.
type Account struct {
	ID             int64     // Surrogate key, assigned by the store on creation and immutable afterwards.
	GivenName      string    // First name. Letters and spaces, at most 50 characters.
	FamilyName     string    // Last name. Same rules as GivenName.
	NationalID     string    // National identity number, 6 to 10 digits.
	Email          string    // Contact email, used as the login identifier.
	LastAccess     time.Time // Updated on every successful login.
	CredentialHash []byte    // Keyed hash of the password. Never serialized outward.
	CredentialKey  []byte    // Random key used to compute and verify CredentialHash.
}
