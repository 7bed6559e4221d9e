package entities

import "strings"

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func ParseRole(raw string) (Role, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(raw), string(RoleAdmin)):
		return RoleAdmin, true
	case strings.EqualFold(strings.TrimSpace(raw), string(RoleUser)):
		return RoleUser, true
	default:
		return "", false
	}
}

// User is a directory record. Credential verification and sessions live in an
// external collaborator; only the hash is stored here.
type User struct {
	UserID       string
	UserName     string
	Email        string
	PasswordHash string
	Role         Role
	Terminated   bool
}
