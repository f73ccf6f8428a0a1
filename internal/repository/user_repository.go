package repository

import (
	"errors"

	"github.com/mizuki-dev/project-management-api/internal/database"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository adds user-specific lookups on top of the generic CRUD
// surface. Reads preload the user's type record.
type UserRepository interface {
	Repository[models.User, uint64]

	// FindByEmail returns the user with the given email, or (nil, nil) when
	// none exists.
	FindByEmail(email string) (*models.User, error)
}

// GormUserRepository is a GORM implementation of UserRepository.
type GormUserRepository struct {
	*GormRepository[models.User, uint64]
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{
		GormRepository: NewGormRepository[models.User, uint64](db),
		db:             db,
	}
}

// FindByID finds a user by ID with the type record preloaded.
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Type").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindAll returns one page of users with their type records preloaded.
func (r *GormUserRepository) FindAll(page, pageSize int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := r.db.Preload("Type").Scopes(database.Paginate(page, pageSize)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// FindByEmail finds a user by email with the type record preloaded.
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Type").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
