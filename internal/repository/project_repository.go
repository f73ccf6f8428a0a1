package repository

import (
	"github.com/mizuki-dev/project-management-api/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository is the data-access surface for projects.
type ProjectRepository interface {
	Repository[models.Project, uint64]
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return NewGormRepository[models.Project, uint64](db)
}
