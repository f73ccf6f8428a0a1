package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/dto"
	"github.com/mizuki-dev/project-management-api/internal/middleware"
	"github.com/mizuki-dev/project-management-api/internal/services"
	"github.com/mizuki-dev/project-management-api/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project stamped with the acting user's id.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		_ = c.Error(apperrors.Unauthorized("Authentication required."))
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:      req.Name,
		Subject:   req.Subject,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
		ActorID:   actorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(*project))
}

// ListProjects returns a paginated list of projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, pageSize, err := utils.ValidatePagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	projects, total, err := h.projectService.GetProjects(page, pageSize)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, utils.NewPaginatedResponse(dto.ToProjectResponses(projects), total, page, pageSize))
}

// GetProject returns a single project by ID.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseProjectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

// UpdateProject applies the fields present in the payload.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		_ = c.Error(apperrors.Unauthorized("Authentication required."))
		return
	}

	id, err := parseProjectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	project, err := h.projectService.UpdateProject(id, services.UpdateProjectInput{
		Name:      req.Name,
		Subject:   req.Subject,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
		ActorID:   actorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

// DeleteProject removes a project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseProjectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Project with id=%d deleted.", id))
}
