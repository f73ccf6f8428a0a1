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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser creates a new user. Manager only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		_ = c.Error(apperrors.Unauthorized("Authentication required."))
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Name:     req.Name,
		UserType: req.UserType,
		ActorID:  actorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(*user))
}

// ListUsers returns a paginated list of users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize, err := utils.ValidatePagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	users, total, err := h.userService.GetUsers(page, pageSize)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, utils.NewPaginatedResponse(dto.ToUserResponses(users), total, page, pageSize))
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateUser applies the allow-listed fields from the payload. Manager only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
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

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(id, services.UpdateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		UserType: req.UserType,
		ActorID:  actorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteUser removes a user. Manager only; deleting yourself is rejected.
func (h *UserHandler) DeleteUser(c *gin.Context) {
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

	if err := h.userService.DeleteUser(id, actorID); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("User with id=%d deleted.", id))
}

func parseIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest("Invalid id parameter.")
	}
	return id, nil
}
