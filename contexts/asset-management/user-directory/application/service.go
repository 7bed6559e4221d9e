package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"assetledger/contexts/asset-management/user-directory/domain/entities"
	domainerrors "assetledger/contexts/asset-management/user-directory/domain/errors"
	"assetledger/contexts/asset-management/user-directory/ports"
)

// Service manages directory records. Every operation is admin-gated; the
// DisplayName methods additionally serve the asset context as its directory
// reader, so they take no caller.
type Service struct {
	Repo   ports.Repository
	Hasher ports.Hasher
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) CreateUser(ctx context.Context, input ports.CreateUserInput, caller ports.Caller) (string, error) {
	if caller.Role != entities.RoleAdmin {
		return "", domainerrors.ErrForbidden
	}
	if strings.TrimSpace(input.UserName) == "" {
		return "", fmt.Errorf("%w: username is required", domainerrors.ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return "", fmt.Errorf("%w: email is required", domainerrors.ErrValidation)
	}
	if input.Password == "" {
		return "", fmt.Errorf("%w: password is required", domainerrors.ErrValidation)
	}
	role, ok := entities.ParseRole(input.Role)
	if !ok {
		return "", fmt.Errorf("%w: unknown role %q", domainerrors.ErrValidation, strings.TrimSpace(input.Role))
	}

	hash, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}
	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}

	user := entities.User{
		UserID:       userID,
		UserName:     strings.TrimSpace(input.UserName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("user created",
		"event", "user_created",
		"module", "asset-management/user-directory",
		"layer", "application",
		"user_id", userID,
		"role", string(role),
		"actor_id", caller.UserID,
	)
	return userID, nil
}

func (s Service) UpdateUser(ctx context.Context, userID string, input ports.UpdateUserInput, caller ports.Caller) error {
	if caller.Role != entities.RoleAdmin {
		return domainerrors.ErrForbidden
	}
	user, err := s.Repo.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return err
	}
	if strings.TrimSpace(input.UserName) == "" {
		return fmt.Errorf("%w: username is required", domainerrors.ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return fmt.Errorf("%w: email is required", domainerrors.ErrValidation)
	}
	role, ok := entities.ParseRole(input.Role)
	if !ok {
		return fmt.Errorf("%w: unknown role %q", domainerrors.ErrValidation, strings.TrimSpace(input.Role))
	}

	user.UserName = strings.TrimSpace(input.UserName)
	user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	user.Role = role
	if input.Password != "" {
		hash, err := s.Hasher.Hash(input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return s.Repo.UpdateUser(ctx, user)
}

// TerminateUser flags the record; it never deletes, so activity history keeps
// resolving actor names.
func (s Service) TerminateUser(ctx context.Context, userID string, caller ports.Caller) error {
	if caller.Role != entities.RoleAdmin {
		return domainerrors.ErrForbidden
	}
	user, err := s.Repo.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return err
	}
	user.Terminated = true
	return s.Repo.UpdateUser(ctx, user)
}

func (s Service) GetUser(ctx context.Context, userID string, caller ports.Caller) (entities.User, error) {
	if caller.Role != entities.RoleAdmin {
		return entities.User{}, domainerrors.ErrForbidden
	}
	return s.Repo.GetUser(ctx, strings.TrimSpace(userID))
}

func (s Service) ListUsers(ctx context.Context, caller ports.Caller, search string) ([]entities.User, error) {
	if caller.Role != entities.RoleAdmin {
		return nil, domainerrors.ErrForbidden
	}
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return users, nil
	}
	matched := make([]entities.User, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.UserName), term) ||
			strings.Contains(strings.ToLower(user.Email), term) ||
			strings.Contains(strings.ToLower(string(user.Role)), term) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

// AssignableUsers lists active non-admin users for assignment pickers.
func (s Service) AssignableUsers(ctx context.Context, caller ports.Caller) ([]entities.User, error) {
	if caller.Role != entities.RoleAdmin {
		return nil, domainerrors.ErrForbidden
	}
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	assignable := make([]entities.User, 0, len(users))
	for _, user := range users {
		if user.Role == entities.RoleUser && !user.Terminated {
			assignable = append(assignable, user)
		}
	}
	return assignable, nil
}

// DisplayName returns the user's name, or empty when the id is unknown.
// Storage failures propagate; a missing record does not.
func (s Service) DisplayName(ctx context.Context, userID string) (string, error) {
	user, err := s.Repo.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.UserName, nil
}

func (s Service) DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		id := strings.TrimSpace(userID)
		if id == "" {
			continue
		}
		if _, done := seen[id]; done {
			continue
		}
		seen[id] = struct{}{}
		name, err := s.DisplayName(ctx, id)
		if err != nil {
			return nil, err
		}
		if name != "" {
			names[id] = name
		}
	}
	return names, nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
