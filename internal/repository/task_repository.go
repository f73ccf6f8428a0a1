package repository

import (
	"github.com/mizuki-dev/project-management-api/internal/database"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"gorm.io/gorm"
)

// TaskRepository adds project-scoped listing on top of the generic CRUD
// surface.
type TaskRepository interface {
	Repository[models.Task, uint64]

	// ListByProject returns one page of the project's tasks plus the total
	// count of tasks in that project.
	ListByProject(projectID uint64, page, pageSize int) ([]models.Task, int64, error)
}

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	*GormRepository[models.Task, uint64]
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{
		GormRepository: NewGormRepository[models.Task, uint64](db),
		db:             db,
	}
}

// ListByProject lists tasks belonging to a project with pagination.
func (r *GormTaskRepository) ListByProject(projectID uint64, page, pageSize int) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := query.Scopes(database.Paginate(page, pageSize)).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}
