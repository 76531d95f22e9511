package constants

// User roles
const (
	RoleBuyer   = "buyer"
	RoleRealtor = "realtor"
	RoleAdmin   = "admin"
)

// Error messages
const (
	ErrHomeNotFound   = "Home not found"
	ErrUnexpected     = "Unexpected error"
	ErrInvalidID      = "Invalid id"
	ErrInvalidInput   = "Invalid input"
	ErrInvalidRole    = "Invalid user type"
	ErrEmailExists    = "Email already exists"
	ErrBadCredentials = "Invalid credentials"
)

// ValidRole reports whether role is one of the three supported roles.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleRealtor || role == RoleAdmin
}
