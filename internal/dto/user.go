package dto

import (
	"time"

	"github.com/mizuki-dev/project-management-api/internal/models"
)

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Username string  `json:"username" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	UserType *uint64 `json:"user_type"`
}

// UpdateUserRequest carries exactly the allow-listed mutable fields. Unknown
// fields in the payload are dropped by binding, never applied and never an
// error.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username"`
	Name     *string `json:"name"`
	UserType *uint64 `json:"user_type"`
}

// UserTypeResponse represents a role record in API responses.
type UserTypeResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserResponse represents a user in API responses. The password hash is
// never included.
type UserResponse struct {
	ID        uint64            `json:"id"`
	Email     string            `json:"email"`
	Username  string            `json:"username"`
	Name      string            `json:"name"`
	UserType  *uint64           `json:"user_type"`
	Type      *UserTypeResponse `json:"type,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	CreatedBy *uint64           `json:"created_by"`
	UpdatedBy *uint64           `json:"updated_by"`
}

// ToUserResponse converts a User model to UserResponse.
func ToUserResponse(user models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Name,
		UserType:  user.UserTypeID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		CreatedBy: user.CreatedBy,
		UpdatedBy: user.UpdatedBy,
	}

	if user.Type != nil {
		resp.Type = &UserTypeResponse{
			ID:   user.Type.ID,
			Name: user.Type.Name,
		}
	}

	return resp
}

// ToUserResponses converts a page of users.
func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
