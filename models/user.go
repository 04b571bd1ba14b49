package models

import "time"

// User roles.
const (
	UserTypeClient = "client"
	UserTypeAdmin  = "admin"
)

// User represents a salon client or admin account.
type User struct {
	ID             string     `bson:"id" json:"id"`
	Type           string     `bson:"type" json:"type"` // "client" or "admin"
	Email          string     `bson:"email" json:"email"`
	Name           string     `bson:"name" json:"name"`
	Phone          string     `bson:"phone" json:"phone"`
	PasswordHash   string     `bson:"password_hash" json:"-"`
	IsDefaultAdmin bool       `bson:"is_default_admin,omitempty" json:"isDefaultAdmin,omitempty"`
	LastLogin      *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}
