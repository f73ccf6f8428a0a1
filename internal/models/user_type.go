package models

// UserType is a role record referenced by users, e.g. "manager" or "member".
type UserType struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}
