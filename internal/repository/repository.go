// Package repository provides the data-access layer. A single generic
// Repository covers the uniform CRUD surface; entity repositories embed it
// and add entity-specific lookups.
package repository

import (
	"errors"

	"github.com/mizuki-dev/project-management-api/internal/database"
	"gorm.io/gorm"
)

// Repository is a uniform CRUD surface over one entity type E keyed by K.
//
// Integrity violations (unique, foreign key) are not translated here; they
// pass through as store errors for the top-level error handler to map.
type Repository[E any, K comparable] interface {
	// Create persists a new row and populates generated fields (id,
	// timestamps) on the given entity. Commits immediately.
	Create(entity *E) error

	// FindByID returns the entity, or (nil, nil) when no row exists. Absence
	// is not an error; callers decide whether it is.
	FindByID(id K) (*E, error)

	// FindAll returns one page of rows in store-default order together with
	// the total row count for the entity type.
	FindAll(page, pageSize int) ([]E, int64, error)

	// Update commits the mutable fields already set on the entity and
	// refreshes it.
	Update(entity *E) error

	// Delete removes the row. Commits immediately.
	Delete(entity *E) error
}

// GormRepository is the GORM implementation of Repository.
type GormRepository[E any, K comparable] struct {
	db *gorm.DB
}

// NewGormRepository creates a generic repository over db.
func NewGormRepository[E any, K comparable](db *gorm.DB) *GormRepository[E, K] {
	return &GormRepository[E, K]{db: db}
}

func (r *GormRepository[E, K]) Create(entity *E) error {
	return r.db.Create(entity).Error
}

func (r *GormRepository[E, K]) FindByID(id K) (*E, error) {
	var entity E
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GormRepository[E, K]) FindAll(page, pageSize int) ([]E, int64, error) {
	var model E

	var total int64
	if err := r.db.Model(&model).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []E
	if err := r.db.Model(&model).Scopes(database.Paginate(page, pageSize)).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *GormRepository[E, K]) Update(entity *E) error {
	return r.db.Save(entity).Error
}

func (r *GormRepository[E, K]) Delete(entity *E) error {
	return r.db.Delete(entity).Error
}
