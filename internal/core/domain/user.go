package domain

import "time"

// Role is the closed set of actor roles in the clinic.
type Role string

const (
	RoleVeterinarian Role = "veterinarian"
	RoleStaff        Role = "staff"
	RoleClient       Role = "client"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleVeterinarian, RoleStaff, RoleClient:
		return true
	}
	return false
}

// Action is a permission-checked operation.
type Action string

const (
	ActionBookAppointment   Action = "book_appointment"
	ActionEditAppointment   Action = "edit_appointment"
	ActionToggleAppointment Action = "toggle_appointment"
	ActionManageRegistry    Action = "manage_registry"
	ActionViewCalendar      Action = "view_calendar"
)

// permissions is the single source of truth for role gating. Screens and
// routes all call CanPerform instead of re-implementing the checks.
var permissions = map[Action][]Role{
	ActionBookAppointment:   {RoleVeterinarian},
	ActionEditAppointment:   {RoleVeterinarian},
	ActionToggleAppointment: {RoleVeterinarian},
	ActionManageRegistry:    {RoleVeterinarian, RoleStaff},
	ActionViewCalendar:      {RoleVeterinarian, RoleStaff, RoleClient},
}

// CanPerform reports whether the given role may perform the action.
func CanPerform(role Role, action Action) bool {
	for _, allowed := range permissions[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// User models a clinic actor: veterinarians and staff operate the system,
// clients are pet owners with read-only calendar access.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	Active       bool      `json:"active" bson:"active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
