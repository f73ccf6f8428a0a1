package constants

// Pagination limits
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Session and context keys
const (
	SessionKeyUserID = "user_id"
	ContextKeyUserID = "user_id"
)

// Seeded user type names
const (
	UserTypeManager = "manager"
	UserTypeMember  = "member"
)

const MinPasswordLength = 8
