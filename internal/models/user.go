package models

import "time"

// UserRole represents the available roles in the admin panel.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleSecretary UserRole = "SECRETARY"
	RoleTeacher   UserRole = "TEACHER"
	RolePatron    UserRole = "PATRON"
	RoleParent    UserRole = "PARENT"
)

// UserStatus tracks the activation workflow of an account.
type UserStatus string

const (
	UserPending  UserStatus = "pending"
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserBlocked  UserStatus = "blocked"
)

// UserStatusTransitions is the fixed toggle table for accounts.
// Pending and blocked accounts move to active; active and inactive flip.
var UserStatusTransitions = map[string]string{
	string(UserPending):  string(UserActive),
	string(UserActive):   string(UserInactive),
	string(UserInactive): string(UserActive),
	string(UserBlocked):  string(UserActive),
}

// User represents an application account returned by the API.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RecordID returns the stable identifier assigned by the API.
func (u User) RecordID() string { return u.ID }
