package services

import (
	"fmt"
	"time"

	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"github.com/mizuki-dev/project-management-api/internal/repository"
)

// TaskService handles task business logic. Tasks live under a project; the
// owning project must exist before a task can be created.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	DueDate     *time.Time
	ActorID     uint64
}

// UpdateTaskInput carries the mutable task fields. Absent fields are left
// untouched.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
	ActorID     uint64
}

// CreateTask persists a new task under the given project, stamped with the
// acting user's id.
func (s *TaskService) CreateTask(projectID uint64, input CreateTaskInput) (*models.Task, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		ProjectID:   projectID,
		CreatedBy:   &input.ActorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTasksByProject returns one page of the project's tasks plus the total
// count of tasks in that project.
func (s *TaskService) GetTasksByProject(projectID uint64, page, pageSize int) ([]models.Task, int64, error) {
	if err := s.ensureProjectExists(projectID); err != nil {
		return nil, 0, err
	}

	tasks, total, err := s.taskRepo.ListByProject(projectID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetTask retrieves a task by ID, converting absence into a not-found error.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return nil, apperrors.NotFoundf("Not found task with id=%d.", id)
	}
	return task, nil
}

// UpdateTask applies the fields present in the input and stamps
// updated_at/updated_by.
func (s *TaskService) UpdateTask(id uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.StartDate != nil {
		task.StartDate = input.StartDate
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	task.UpdatedAt = time.Now().UTC()
	task.UpdatedBy = &input.ActorID

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(id uint64) error {
	task, err := s.GetTask(id)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) ensureProjectExists(projectID uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return apperrors.NotFoundf("Not found project with id=%d.", projectID)
	}
	return nil
}
