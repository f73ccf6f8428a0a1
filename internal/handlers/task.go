package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/dto"
	"github.com/mizuki-dev/project-management-api/internal/middleware"
	"github.com/mizuki-dev/project-management-api/internal/services"
	"github.com/mizuki-dev/project-management-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task under a project.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		_ = c.Error(apperrors.Unauthorized("Authentication required."))
		return
	}

	projectID, err := parseProjectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	task, err := h.taskService.CreateTask(projectID, services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		ActorID:     actorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(*task))
}

// ListTasksByProject returns a paginated list of the project's tasks.
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, err := parseProjectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page, pageSize, err := utils.ValidatePagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tasks, total, err := h.taskService.GetTasksByProject(projectID, page, pageSize)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, utils.NewPaginatedResponse(dto.ToTaskResponses(tasks), total, page, pageSize))
}

// GetTask returns a single task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// UpdateTask applies the fields present in the payload.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		_ = c.Error(apperrors.Unauthorized("Authentication required."))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(id, services.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		ActorID:     actorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Task with id=%d deleted.", id))
}

func parseProjectIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest("Invalid project_id parameter.")
	}
	return id, nil
}
