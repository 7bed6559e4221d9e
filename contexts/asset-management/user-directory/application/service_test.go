package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"assetledger/contexts/asset-management/user-directory/domain/entities"
	domainerrors "assetledger/contexts/asset-management/user-directory/domain/errors"
	"assetledger/contexts/asset-management/user-directory/ports"
)

type fakeRepo struct {
	users map[string]entities.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]entities.User)}
}

func (r *fakeRepo) CreateUser(_ context.Context, user entities.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *fakeRepo) GetUser(_ context.Context, userID string) (entities.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeRepo) UpdateUser(_ context.Context, user entities.User) error {
	if _, ok := r.users[user.UserID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	r.users[user.UserID] = user
	return nil
}

func (r *fakeRepo) ListUsers(_ context.Context) ([]entities.User, error) {
	users := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hash(" + password + ")", nil
}

type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID(_ context.Context) (string, error) {
	g.n++
	return fmt.Sprintf("user-%d", g.n), nil
}

var admin = ports.Caller{UserID: "admin-1", Role: entities.RoleAdmin}

func testService(repo *fakeRepo) Service {
	return Service{Repo: repo, Hasher: fakeHasher{}, IDGen: &seqIDGen{}}
}

func validInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		UserName: "Alice",
		Email:    "Alice@Example.com",
		Password: "s3cret",
		Role:     "User",
	}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	service := testService(newFakeRepo())
	_, err := service.CreateUser(context.Background(), validInput(), ports.Caller{UserID: "user-1", Role: entities.RoleUser})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateUserValidatesAndNormalizes(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	cases := map[string]func(*ports.CreateUserInput){
		"missing username": func(in *ports.CreateUserInput) { in.UserName = " " },
		"missing email":    func(in *ports.CreateUserInput) { in.Email = "" },
		"missing password": func(in *ports.CreateUserInput) { in.Password = "" },
		"unknown role":     func(in *ports.CreateUserInput) { in.Role = "Superuser" },
	}
	for name, mutate := range cases {
		input := validInput()
		mutate(&input)
		if _, err := service.CreateUser(context.Background(), input, admin); !errors.Is(err, domainerrors.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}

	userID, err := service.CreateUser(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	user := repo.users[userID]
	if user.Email != "alice@example.com" {
		t.Fatalf("email must be lowercased, got %q", user.Email)
	}
	if user.PasswordHash != "hash(s3cret)" {
		t.Fatalf("password must be stored hashed, got %q", user.PasswordHash)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	service := testService(newFakeRepo())
	if _, err := service.CreateUser(context.Background(), validInput(), admin); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	input := validInput()
	input.UserName = "Alice2"
	_, err := service.CreateUser(context.Background(), input, admin)
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserKeepsHashWhenPasswordBlank(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)
	userID, err := service.CreateUser(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	update := ports.UpdateUserInput{UserName: "Alice B", Email: "alice@example.com", Role: "Admin"}
	if err := service.UpdateUser(context.Background(), userID, update, admin); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	user := repo.users[userID]
	if user.PasswordHash != "hash(s3cret)" {
		t.Fatalf("blank password must keep existing hash, got %q", user.PasswordHash)
	}
	if user.Role != entities.RoleAdmin || user.UserName != "Alice B" {
		t.Fatalf("unexpected record %+v", user)
	}

	update.Password = "newpass"
	if err := service.UpdateUser(context.Background(), userID, update, admin); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.users[userID].PasswordHash != "hash(newpass)" {
		t.Fatalf("non-blank password must rehash")
	}
}

func TestTerminateUserFlagsWithoutDeleting(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)
	userID, err := service.CreateUser(context.Background(), validInput(), admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.TerminateUser(context.Background(), userID, admin); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}
	user, ok := repo.users[userID]
	if !ok {
		t.Fatalf("terminated users must stay in the directory")
	}
	if !user.Terminated {
		t.Fatalf("expected terminated flag set")
	}

	// History lookups still resolve the name after termination.
	name, err := service.DisplayName(context.Background(), userID)
	if err != nil || name != "Alice" {
		t.Fatalf("expected Alice, got %q (%v)", name, err)
	}
}

func TestAssignableUsersExcludesAdminsAndTerminated(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	seed := []entities.User{
		{UserID: "u1", UserName: "alice", Email: "a@x", Role: entities.RoleUser},
		{UserID: "u2", UserName: "bob", Email: "b@x", Role: entities.RoleUser, Terminated: true},
		{UserID: "u3", UserName: "carol", Email: "c@x", Role: entities.RoleAdmin},
	}
	for _, user := range seed {
		repo.users[user.UserID] = user
	}

	users, err := service.AssignableUsers(context.Background(), admin)
	if err != nil {
		t.Fatalf("assignable failed: %v", err)
	}
	if len(users) != 1 || users[0].UserID != "u1" {
		t.Fatalf("expected only active plain users, got %+v", users)
	}

	if _, err := service.AssignableUsers(context.Background(), ports.Caller{UserID: "u1", Role: entities.RoleUser}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListUsersSearch(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)
	repo.users["u1"] = entities.User{UserID: "u1", UserName: "Alice", Email: "alice@example.com", Role: entities.RoleUser}
	repo.users["u2"] = entities.User{UserID: "u2", UserName: "Bob", Email: "bob@corp.io", Role: entities.RoleAdmin}

	users, err := service.ListUsers(context.Background(), admin, "corp")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 || users[0].UserID != "u2" {
		t.Fatalf("email search should match u2, got %+v", users)
	}

	users, err = service.ListUsers(context.Background(), admin, "admin")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 || users[0].UserID != "u2" {
		t.Fatalf("role search should match u2, got %+v", users)
	}
}

func TestDisplayNameUnknownUserIsEmptyNotError(t *testing.T) {
	service := testService(newFakeRepo())
	name, err := service.DisplayName(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if name != "" {
		t.Fatalf("expected empty name, got %q", name)
	}
}

func TestDisplayNamesDeduplicatesAndSkipsBlank(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)
	repo.users["u1"] = entities.User{UserID: "u1", UserName: "Alice"}

	names, err := service.DisplayNames(context.Background(), []string{"u1", "u1", "", "ghost"})
	if err != nil {
		t.Fatalf("display names failed: %v", err)
	}
	if len(names) != 1 || names["u1"] != "Alice" {
		t.Fatalf("unexpected map %+v", names)
	}
}
