package models

import (
	"time"
)

type UserRole string

const (
	RoleUser    UserRole = "User"
	RoleManager UserRole = "Manager"
	RoleAdmin   UserRole = "Admin"
)

// ValidRole reports whether r is one of the assignable roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusApproved UserStatus = "approved"
	StatusRejected UserStatus = "rejected"
)

// User is a membership record in the "users" collection. The document id is
// the Firebase UID (or a generated id for accounts minted by admintool).
type User struct {
	UID       string     `firestore:"uid" json:"uid"`
	Email     string     `firestore:"email" json:"email"`
	Name      string     `firestore:"name" json:"name"`
	Role      UserRole   `firestore:"role" json:"role"`
	Status    UserStatus `firestore:"status" json:"status"`
	CreatedAt time.Time  `firestore:"createdAt" json:"createdAt"`
	LastLogin *time.Time `firestore:"lastLogin" json:"lastLogin,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
