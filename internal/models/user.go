package models

import (
	"time"

	"github.com/mizuki-dev/project-management-api/internal/constants"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Username     string    `gorm:"type:varchar(255);not null" json:"username"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	UserTypeID   *uint64   `json:"user_type_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Audit references stay plain nullable ids; the related user is looked up
	// on demand, never preloaded.
	CreatedBy *uint64 `json:"created_by"`
	UpdatedBy *uint64 `json:"updated_by"`

	Type *UserType `gorm:"foreignKey:UserTypeID" json:"type,omitempty"`
}

// IsManager reports whether the user's type is the manager role. Requires
// Type to be preloaded.
func (u *User) IsManager() bool {
	return u.Type != nil && u.Type.Name == constants.UserTypeManager
}
