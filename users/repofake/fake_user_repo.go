package fakeuserrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tilhub/acronyms/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory users.Repo for tests. It mirrors the storage
// layer's unique-username guarantee: Create checks and inserts under one lock.
type FakeUserRepo struct {
	lock        sync.RWMutex
	users       map[string]*users.User
	usernameIDs map[string]string // username to user id
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users:       make(map[string]*users.User),
		usernameIDs: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Create(_ context.Context, user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.usernameIDs[user.Username]; ok {
		return users.ErrDuplicateUsername
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	ur.users[user.ID] = &stored
	ur.usernameIDs[user.Username] = user.ID
	return nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	user, ok := ur.users[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (ur *FakeUserRepo) GetByUsername(_ context.Context, username string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.usernameIDs[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *ur.users[id]
	return &copied, nil
}

func (ur *FakeUserRepo) List(_ context.Context) ([]*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	list := make([]*users.User, 0, len(ur.users))
	for _, user := range ur.users {
		copied := *user
		list = append(list, &copied)
	}
	return list, nil
}

func (ur *FakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	user, ok := ur.users[id]
	if !ok {
		return users.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}
