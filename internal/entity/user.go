package entity

// Role is the access level assigned to a user at signup.
type Role string

// Roles accepted by the signup endpoint.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)
