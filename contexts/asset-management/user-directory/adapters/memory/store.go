package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"assetledger/contexts/asset-management/user-directory/domain/entities"
	domainerrors "assetledger/contexts/asset-management/user-directory/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewStore() *Store {
	return &Store{users: make(map[string]entities.User)}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(user.UserID)
	if id == "" {
		return domainerrors.ErrValidation
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	s.users[id] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[strings.TrimSpace(userID)]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) UpdateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(user.UserID)
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	for otherID, existing := range s.users {
		if otherID != id && existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	s.users[id] = user
	return nil
}

func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.User, 0, len(s.users))
	for _, user := range s.users {
		items = append(items, user)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UserName < items[j].UserName
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
