package model

import "slices"

type Permission string

const (
	PermissionRead  Permission = "read:all"
	PermissionAdmin Permission = "admin:all"
)

// User is the acting caller resolved by the identity provider for one request.
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email,omitempty"`
	Permissions []string `json:"permissions"`
}

func (u User) HasPermission(p Permission) bool {
	return slices.Contains(u.Permissions, string(p))
}

// AuditName is the identity written into created_by and modified_by.
func (u User) AuditName() string {
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
