package model

import "time"

// AccountModel mirrors the 'accounts' table. The integer primary key is
// assigned by PostgreSQL on insert. The unique index on email backs the
// registration duplicate check at the storage level, closing the
// check-then-insert race window under concurrent registrations.
type AccountModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	GivenName      string `gorm:"type:varchar(50);not null"`
	FamilyName     string `gorm:"type:varchar(50);not null"`
	NationalID     string `gorm:"type:varchar(10);not null"`
	Email          string `gorm:"type:varchar(100);uniqueIndex;not null"`
	LastAccess     time.Time
	CredentialHash []byte `gorm:"type:bytea;not null"`
	CredentialKey  []byte `gorm:"type:bytea;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
