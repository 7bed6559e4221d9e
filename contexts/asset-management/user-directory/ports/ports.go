package ports

import (
	"context"
	"strings"
	"time"

	"assetledger/contexts/asset-management/user-directory/domain/entities"
)

type Caller struct {
	UserID string
	Role   entities.Role
}

// ParseCallerRole degrades empty or unknown role headers to User.
func ParseCallerRole(raw string) entities.Role {
	if strings.EqualFold(strings.TrimSpace(raw), string(entities.RoleAdmin)) {
		return entities.RoleAdmin
	}
	return entities.RoleUser
}

type CreateUserInput struct {
	UserName string
	Email    string
	Password string
	Role     string
}

type UpdateUserInput struct {
	UserName string
	Email    string
	Password string
	Role     string
}

type Repository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUser(ctx context.Context, userID string) (entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) error
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// Hasher hides the password-hashing primitive from the application layer.
type Hasher interface {
	Hash(password string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
