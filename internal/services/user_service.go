package services

import (
	"fmt"
	"time"

	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/models"
	"github.com/mizuki-dev/project-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user business logic: password hashing, the update
// allow-list and the self-delete guard.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Email    string
	Password string
	Username string
	Name     string
	UserType *uint64
	ActorID  uint64
}

// UpdateUserInput carries the allow-listed mutable user fields. Absent
// fields are left untouched; anything outside this set never reaches the
// service.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Name     *string
	UserType *uint64
	ActorID  uint64
}

// CreateUser hashes the password and persists a new user stamped with the
// acting user's id. A duplicate email surfaces as the store's uniqueness
// violation, untranslated.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Username:     input.Username,
		Name:         input.Name,
		UserTypeID:   input.UserType,
		CreatedBy:    &input.ActorID,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUsers returns one page of users plus the total count.
func (s *UserService) GetUsers(page, pageSize int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.FindAll(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// GetUser retrieves a user by ID, converting absence into a not-found error.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NotFoundf("Not found user with id=%d.", id)
	}
	return user, nil
}

// UpdateUser applies the allow-listed fields present in the input and stamps
// updated_at/updated_by.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.UserType != nil {
		user.UserTypeID = input.UserType
	}
	user.UpdatedAt = time.Now().UTC()
	user.UpdatedBy = &input.ActorID
	// Drop the preloaded type record so Save does not upsert it.
	user.Type = nil

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.GetUser(id)
}

// DeleteUser removes a user. Deleting the currently authenticated user is
// rejected as a conflict before any deletion is attempted.
func (s *UserService) DeleteUser(id, actorID uint64) error {
	if id == actorID {
		return apperrors.Conflict("Current user can not be deleted.")
	}

	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(user); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
