package fakeacronymrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/tilhub/acronyms/acronyms"
)

var _ acronyms.Repo = (*FakeAcronymRepo)(nil)

// FakeAcronymRepo is an in-memory acronyms.Repo for tests.
type FakeAcronymRepo struct {
	lock     sync.RWMutex
	nextID   int64
	acronyms map[int64]*acronyms.Acronym
}

func NewFakeAcronymRepo() *FakeAcronymRepo {
	return &FakeAcronymRepo{nextID: 1, acronyms: make(map[int64]*acronyms.Acronym)}
}

func (ar *FakeAcronymRepo) Create(_ context.Context, acronym *acronyms.Acronym) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	acronym.ID = ar.nextID
	ar.nextID++
	stored := *acronym
	ar.acronyms[acronym.ID] = &stored
	return nil
}

func (ar *FakeAcronymRepo) GetByID(_ context.Context, id int64) (*acronyms.Acronym, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	acronym, ok := ar.acronyms[id]
	if !ok {
		return nil, acronyms.ErrNotFound
	}
	copied := *acronym
	return &copied, nil
}

func (ar *FakeAcronymRepo) Update(_ context.Context, acronym *acronyms.Acronym) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if _, ok := ar.acronyms[acronym.ID]; !ok {
		return acronyms.ErrNotFound
	}
	stored := *acronym
	ar.acronyms[acronym.ID] = &stored
	return nil
}

func (ar *FakeAcronymRepo) Delete(_ context.Context, id int64) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if _, ok := ar.acronyms[id]; !ok {
		return acronyms.ErrNotFound
	}
	delete(ar.acronyms, id)
	return nil
}

func (ar *FakeAcronymRepo) List(_ context.Context) ([]*acronyms.Acronym, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()
	return ar.collect(func(*acronyms.Acronym) bool { return true }), nil
}

func (ar *FakeAcronymRepo) ListByUser(_ context.Context, userID string) ([]*acronyms.Acronym, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()
	return ar.collect(func(a *acronyms.Acronym) bool { return a.UserID == userID }), nil
}

func (ar *FakeAcronymRepo) Search(_ context.Context, term string) ([]*acronyms.Acronym, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()
	return ar.collect(func(a *acronyms.Acronym) bool {
		return a.Short == term || a.Long == term
	}), nil
}

func (ar *FakeAcronymRepo) First(ctx context.Context) (*acronyms.Acronym, error) {
	list, _ := ar.List(ctx)
	if len(list) == 0 {
		return nil, acronyms.ErrNotFound
	}
	return list[0], nil
}

func (ar *FakeAcronymRepo) SortedByShort(ctx context.Context) ([]*acronyms.Acronym, error) {
	list, _ := ar.List(ctx)
	sort.Slice(list, func(i, j int) bool { return list[i].Short < list[j].Short })
	return list, nil
}

// collect returns ID-ordered copies of the matching rows; callers hold the
// read lock.
func (ar *FakeAcronymRepo) collect(match func(*acronyms.Acronym) bool) []*acronyms.Acronym {
	ids := make([]int64, 0, len(ar.acronyms))
	for id := range ar.acronyms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var list []*acronyms.Acronym
	for _, id := range ids {
		if match(ar.acronyms[id]) {
			copied := *ar.acronyms[id]
			list = append(list, &copied)
		}
	}
	return list
}
