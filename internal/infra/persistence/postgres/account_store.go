package postgres

import (
	"padron/internal/domain/entity"
	"padron/internal/domain/repository"
	"padron/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountColumns whitelists the Account fields usable in criteria and maps
// them to their storage columns.
var accountColumns = map[string]string{
	entity.AccountFieldGivenName:  "given_name",
	entity.AccountFieldFamilyName: "family_name",
	entity.AccountFieldNationalID: "national_id",
	entity.AccountFieldEmail:      "email",
}

// NewAccountStore instantiates the generic store for the Account entity.
// This is the only per-entity code the persistence layer needs: a column
// whitelist and the two mapper functions.
func NewAccountStore(db *gorm.DB) repository.Store[entity.Account] {
	return newStore(db, accountColumns, fromAccountDomain, toAccountDomain)
}

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		GivenName:      data.GivenName,
		FamilyName:     data.FamilyName,
		NationalID:     data.NationalID,
		Email:          data.Email,
		LastAccess:     data.LastAccess,
		CredentialHash: data.CredentialHash,
		CredentialKey:  data.CredentialKey,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:             data.ID,
		GivenName:      data.GivenName,
		FamilyName:     data.FamilyName,
		NationalID:     data.NationalID,
		Email:          data.Email,
		LastAccess:     data.LastAccess,
		CredentialHash: data.CredentialHash,
		CredentialKey:  data.CredentialKey,
	}
}
