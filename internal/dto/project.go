package dto

import (
	"time"

	"github.com/mizuki-dev/project-management-api/internal/models"
)

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name      string     `json:"name" binding:"required"`
	Subject   string     `json:"subject"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
}

// UpdateProjectRequest carries the mutable project fields; absent fields are
// left untouched.
type UpdateProjectRequest struct {
	Name      *string    `json:"name"`
	Subject   *string    `json:"subject"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	CreatedBy *uint64    `json:"created_by"`
	UpdatedBy *uint64    `json:"updated_by"`
}

// ToProjectResponse converts a Project model to ProjectResponse.
func ToProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		Subject:   project.Subject,
		StartDate: project.StartDate,
		DueDate:   project.DueDate,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
		CreatedBy: project.CreatedBy,
		UpdatedBy: project.UpdatedBy,
	}
}

// ToProjectResponses converts a page of projects.
func ToProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}
