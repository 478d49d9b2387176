package postgres

import (
	"context"
	"strings"

	domainerrors "padron/internal/domain/errors"
	"padron/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormStore is the single generic implementation of repository.Store. It is
// parameterized over the domain entity type E and the persistence model M,
// with a pair of mapper functions bridging the two, so no entity ever needs
// a bespoke CRUD implementation.
//
// Criteria fields are resolved through a per-entity column whitelist; the
// resulting conditions are always parameterized, so no caller-supplied
// value ever reaches the SQL text.
type gormStore[E any, M any] struct {
	db       *gorm.DB
	columns  map[string]string
	toModel  func(*E) *M
	toEntity func(*M) *E
}

func newStore[E any, M any](
	db *gorm.DB,
	columns map[string]string,
	toModel func(*E) *M,
	toEntity func(*M) *E,
) repository.Store[E] {
	return &gormStore[E, M]{
		db:       db,
		columns:  columns,
		toModel:  toModel,
		toEntity: toEntity,
	}
}

// GetAll returns every stored instance of the entity.
func (s *gormStore[E, M]) GetAll(ctx context.Context) ([]*E, error) {
	var models []*M
	if err := s.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list entities")
	}

	return s.toEntities(models), nil
}

// GetByID performs a point lookup. Absence is (nil, nil), not an error.
func (s *gormStore[E, M]) GetByID(ctx context.Context, id int64) (*E, error) {
	var m M
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find entity by id")
	}

	return s.toEntity(&m), nil
}

// GetWhere returns every instance satisfying the criteria.
func (s *gormStore[E, M]) GetWhere(ctx context.Context, criteria *repository.Criteria) ([]*E, error) {
	tx, err := s.applyCriteria(s.db.WithContext(ctx), criteria)
	if err != nil {
		return nil, err
	}

	var models []*M
	if err := tx.Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query entities by criteria")
	}

	return s.toEntities(models), nil
}

// GetOneWhere returns at most one instance satisfying the criteria.
func (s *gormStore[E, M]) GetOneWhere(ctx context.Context, criteria *repository.Criteria) (*E, error) {
	tx, err := s.applyCriteria(s.db.WithContext(ctx), criteria)
	if err != nil {
		return nil, err
	}

	var m M
	err = tx.First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query entity by criteria")
	}

	return s.toEntity(&m), nil
}

// Add persists a new instance and writes the store-assigned identifier and
// timestamps back into the entity.
func (s *gormStore[E, M]) Add(ctx context.Context, entity *E) error {
	m := s.toModel(entity)
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrap(repository.ErrDuplicateKey, "unique constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entity")
	}

	*entity = *s.toEntity(m)

	return nil
}

// Update replaces the stored field values of the instance with the given id.
// The identifier column is never part of the update. A missing id affects
// zero rows and is a no-op.
func (s *gormStore[E, M]) Update(ctx context.Context, id int64, entity *E) error {
	m := s.toModel(entity)
	err := s.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrap(repository.ErrDuplicateKey, "unique constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update entity")
	}

	return nil
}

// Delete removes the instance with the given id. A missing id is a no-op.
func (s *gormStore[E, M]) Delete(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete entity")
	}

	return nil
}

func (s *gormStore[E, M]) toEntities(models []*M) []*E {
	result := make([]*E, 0, len(models))
	for _, m := range models {
		result = append(result, s.toEntity(m))
	}

	return result
}

func (s *gormStore[E, M]) applyCriteria(tx *gorm.DB, criteria *repository.Criteria) (*gorm.DB, error) {
	conditions, err := buildConditions(criteria, s.columns)
	if err != nil {
		return nil, err
	}

	for _, cond := range conditions {
		tx = tx.Where(cond.expr, cond.arg)
	}

	return tx, nil
}

// condition is one parameterized WHERE fragment derived from a criteria clause.
type condition struct {
	expr string
	arg  any
}

// buildConditions translates criteria clauses into parameterized conditions.
// Field names must appear in the column whitelist; anything else is a
// programming error surfaced immediately rather than silently ignored.
func buildConditions(criteria *repository.Criteria, columns map[string]string) ([]condition, error) {
	clauses := criteria.Clauses()
	conditions := make([]condition, 0, len(clauses))

	for _, clause := range clauses {
		column, ok := columns[clause.Field]
		if !ok {
			return nil, errors.Errorf("unknown criteria field %q", clause.Field)
		}

		switch clause.Op {
		case repository.OpEqual:
			conditions = append(conditions, condition{expr: column + " = ?", arg: clause.Value})
		case repository.OpContains:
			conditions = append(conditions, condition{expr: column + " LIKE ?", arg: "%" + escapeLike(clause.Value) + "%"})
		default:
			return nil, errors.Errorf("unknown criteria operator %d", clause.Op)
		}
	}

	return conditions, nil
}

// escapeLike neutralizes LIKE metacharacters in a substring-match value.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(value)
}
