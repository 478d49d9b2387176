package entity

// Criteria field names for Account filtering. Store implementations map
// these to their own column names; callers never see storage identifiers.
const (
	AccountFieldGivenName  = "givenName"
	AccountFieldFamilyName = "familyName"
	AccountFieldNationalID = "nationalId"
	AccountFieldEmail      = "email"
)
