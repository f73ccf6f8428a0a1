package dto

import (
	"time"

	"github.com/mizuki-dev/project-management-api/internal/models"
)

// CreateTaskRequest is the payload for creating a task under a project.
type CreateTaskRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest carries the mutable task fields; absent fields are left
// untouched.
type UpdateTaskRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   uint64     `json:"project_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CreatedBy   *uint64    `json:"created_by"`
	UpdatedBy   *uint64    `json:"updated_by"`
}

// ToTaskResponse converts a Task model to TaskResponse.
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		StartDate:   task.StartDate,
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CreatedBy:   task.CreatedBy,
		UpdatedBy:   task.UpdatedBy,
	}
}

// ToTaskResponses converts a page of tasks.
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
