// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	GivenName  string `json:"givenName" validate:"required,max=50,alphaspace"`
	FamilyName string `json:"familyName" validate:"required,max=50,alphaspace"`
	NationalID string `json:"nationalId" validate:"required,number,min=6,max=10"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Password   string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateInput defines the mutable profile fields of an account.
// Credential material is never part of an update.
type UpdateInput struct {
	GivenName  string `json:"givenName" validate:"required,max=50,alphaspace"`
	FamilyName string `json:"familyName" validate:"required,max=50,alphaspace"`
	NationalID string `json:"nationalId" validate:"required,number,min=6,max=10"`
	Email      string `json:"email" validate:"required,email,max=100"`
}

// FilterInput carries the optional filter parameters. An empty field does
// not filter; present fields combine with logical AND.
type FilterInput struct {
	Name       string // substring match on GivenName
	Surname    string // substring match on FamilyName
	NationalID string // exact match
	Email      string // substring match
}

// --- Output DTOs ---

// AccountOutput is the sanitized representation returned across the service
// boundary. It never carries credential hash or key material.
type AccountOutput struct {
	ID         int64      `json:"id"`
	GivenName  string     `json:"givenName"`
	FamilyName string     `json:"familyName"`
	NationalID string     `json:"nationalId"`
	Email      string     `json:"email"`
	LastAccess *time.Time `json:"lastAccess,omitempty"`
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AccountOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Update(ctx context.Context, id int64, input *UpdateInput) (*AccountOutput, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*AccountOutput, error)
	GetAll(ctx context.Context) ([]*AccountOutput, error)
	GetByFilter(ctx context.Context, input *FilterInput) ([]*AccountOutput, error)
}
