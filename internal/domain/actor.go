package domain

// Role represents the role of the calling actor, supplied by the
// external auth collaborator. Never re-derived inside this service.
type Role string

const (
	RoleUser       Role = "user"
	RoleTechnician Role = "technician"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
)

// Actor is the authenticated identity performing an operation
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin returns true if the actor holds the administrator capability
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns returns true if the actor owns the given booking
func (a Actor) Owns(b *Booking) bool {
	return b != nil && b.UserID == a.ID
}
