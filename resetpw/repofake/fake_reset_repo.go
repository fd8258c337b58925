package fakeresetrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tilhub/acronyms/resetpw"
)

var _ resetpw.Repo = (*FakeResetRepo)(nil)

// FakeResetRepo is an in-memory resetpw.Repo. Redeem removes the row under
// the lock, mirroring the storage layer's atomic delete-and-return.
type FakeResetRepo struct {
	lock   sync.Mutex
	values map[string]*resetpw.Token // value to token
}

func NewFakeResetRepo() *FakeResetRepo {
	return &FakeResetRepo{values: make(map[string]*resetpw.Token)}
}

func (rr *FakeResetRepo) Create(_ context.Context, token *resetpw.Token) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	stored := *token
	rr.values[token.Value] = &stored
	return nil
}

func (rr *FakeResetRepo) Redeem(_ context.Context, value string) (string, error) {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	token, ok := rr.values[value]
	if !ok {
		return "", resetpw.ErrInvalidToken
	}
	delete(rr.values, value)
	return token.UserID, nil
}

// Outstanding reports how many tokens have been issued and not yet redeemed.
func (rr *FakeResetRepo) Outstanding() int {
	rr.lock.Lock()
	defer rr.lock.Unlock()
	return len(rr.values)
}
