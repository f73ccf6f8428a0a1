package services

import (
	"fmt"
	"time"

	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"github.com/mizuki-dev/project-management-api/internal/repository"
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name      string
	Subject   string
	StartDate *time.Time
	DueDate   *time.Time
	ActorID   uint64
}

// UpdateProjectInput carries the mutable project fields. Absent fields are
// left untouched.
type UpdateProjectInput struct {
	Name      *string
	Subject   *string
	StartDate *time.Time
	DueDate   *time.Time
	ActorID   uint64
}

// CreateProject persists a new project stamped with the acting user's id.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Name:      input.Name,
		Subject:   input.Subject,
		StartDate: input.StartDate,
		DueDate:   input.DueDate,
		CreatedBy: &input.ActorID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProjects returns one page of projects plus the total count.
func (s *ProjectService) GetProjects(page, pageSize int) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.FindAll(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetProject retrieves a project by ID, converting absence into a not-found
// error.
func (s *ProjectService) GetProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, apperrors.NotFoundf("Not found project with id=%d.", id)
	}
	return project, nil
}

// UpdateProject applies the fields present in the input and stamps
// updated_at/updated_by.
func (s *ProjectService) UpdateProject(id uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Subject != nil {
		project.Subject = *input.Subject
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.DueDate != nil {
		project.DueDate = input.DueDate
	}
	project.UpdatedAt = time.Now().UTC()
	project.UpdatedBy = &input.ActorID

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(id uint64) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
