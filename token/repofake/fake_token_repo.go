package faketokenrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/tilhub/acronyms/token"
)

var _ token.Repo = (*FakeTokenRepo)(nil)

// FakeTokenRepo is an in-memory token.Repo for tests.
type FakeTokenRepo struct {
	lock   sync.RWMutex
	values map[string]*token.Token // value to token
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{values: make(map[string]*token.Token)}
}

func (tr *FakeTokenRepo) Create(_ context.Context, tok *token.Token) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if tok.ID == "" {
		tok.ID = uuid.New().String()
	}
	stored := *tok
	tr.values[tok.Value] = &stored
	return nil
}

func (tr *FakeTokenRepo) GetByValue(_ context.Context, value string) (*token.Token, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	tok, ok := tr.values[value]
	if !ok {
		return nil, token.ErrNotFound
	}
	copied := *tok
	return &copied, nil
}
