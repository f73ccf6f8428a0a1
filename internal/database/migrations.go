package database

import (
	"fmt"
	"log"

	"github.com/mizuki-dev/project-management-api/internal/constants"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"gorm.io/gorm"
)

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.UserType{},
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := SeedUserTypes(DB); err != nil {
		return fmt.Errorf("failed to seed user types: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedUserTypes makes sure the built-in role records exist.
func SeedUserTypes(db *gorm.DB) error {
	for _, name := range []string{constants.UserTypeManager, constants.UserTypeMember} {
		userType := models.UserType{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&userType).Error; err != nil {
			return err
		}
	}
	return nil
}
