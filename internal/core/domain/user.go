package domain

// UserRole decides which clients a user may see.
type UserRole string

const (
	RoleCA     UserRole = "CA"     // Chartered accountant, may view every client
	RoleClient UserRole = "CLIENT" // Organisation user, bound to a single client
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	ClientID     string   `json:"clientID,omitempty"` // Set only for RoleClient
	AuditFields
}

// CanAccessClient reports whether the user may read or post entries for clientID.
func (u User) CanAccessClient(clientID string) bool {
	switch u.Role {
	case RoleCA:
		return true
	case RoleClient:
		return u.ClientID != "" && u.ClientID == clientID
	default:
		return false
	}
}
