// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"padron/internal/errors"
)

// ErrDuplicateKey is returned by Store.Add when the backing store rejects the
// entity because of a uniqueness constraint (e.g. the account email column).
var ErrDuplicateKey = errors.New("duplicate key")

// Store is a generic persistence contract shared by every stored entity type.
// A single implementation serves all entities, so CRUD and criteria-based
// querying are written once instead of per entity.
//
// Reads report absence as data, not as failure: GetByID and GetOneWhere
// return (nil, nil) when nothing matches, and GetAll/GetWhere return an
// empty slice. Errors are reserved for the backing store misbehaving.
type Store[T any] interface {
	// GetAll returns every stored instance of T.
	GetAll(ctx context.Context) ([]*T, error)

	// GetByID performs a point lookup by the entity's integer identifier.
	GetByID(ctx context.Context, id int64) (*T, error)

	// GetWhere returns every instance satisfying the criteria.
	GetWhere(ctx context.Context, criteria *Criteria) ([]*T, error)

	// GetOneWhere returns at most one instance satisfying the criteria.
	// The tie-break between multiple matches is unspecified; callers are
	// expected to filter on an effectively unique field such as email.
	GetOneWhere(ctx context.Context, criteria *Criteria) (*T, error)

	// Add persists a new instance. The store assigns the identifier and
	// writes it back into the entity.
	Add(ctx context.Context, entity *T) error

	// Update replaces the field values of the instance with the given id.
	// The identifier itself is never overwritten. Updating a missing id is
	// a no-op, not an error.
	Update(ctx context.Context, id int64, entity *T) error

	// Delete removes the instance with the given id. Deleting a missing id
	// is a no-op, not an error.
	Delete(ctx context.Context, id int64) error
}
