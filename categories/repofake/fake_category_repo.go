package fakecategoryrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/tilhub/acronyms/acronyms"
	"github.com/tilhub/acronyms/categories"
)

var (
	_ categories.Repo      = (*FakeCategoryRepo)(nil)
	_ categories.PivotRepo = (*FakeCategoryRepo)(nil)
)

type pivotPair struct {
	acronymID  int64
	categoryID int64
}

// FakeCategoryRepo implements both the category and pivot ports over shared
// in-memory state, the way the Postgres schema shares one database. Both the
// name uniqueness of FindOrCreate and the pair uniqueness of Attach hold
// under the single lock.
type FakeCategoryRepo struct {
	lock     sync.Mutex
	nextID   int64
	byName   map[string]*categories.Category
	byID     map[int64]*categories.Category
	pivots   map[pivotPair]struct{}
	acronyms acronyms.Repo
}

func NewFakeCategoryRepo(acronymRepo acronyms.Repo) *FakeCategoryRepo {
	return &FakeCategoryRepo{
		nextID:   1,
		byName:   make(map[string]*categories.Category),
		byID:     make(map[int64]*categories.Category),
		pivots:   make(map[pivotPair]struct{}),
		acronyms: acronymRepo,
	}
}

func (cr *FakeCategoryRepo) FindOrCreate(_ context.Context, name string) (*categories.Category, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	if category, ok := cr.byName[name]; ok {
		copied := *category
		return &copied, nil
	}
	category := &categories.Category{ID: cr.nextID, Name: name}
	cr.nextID++
	cr.byName[name] = category
	cr.byID[category.ID] = category
	copied := *category
	return &copied, nil
}

func (cr *FakeCategoryRepo) GetByID(_ context.Context, id int64) (*categories.Category, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	category, ok := cr.byID[id]
	if !ok {
		return nil, categories.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (cr *FakeCategoryRepo) List(_ context.Context) ([]*categories.Category, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	list := make([]*categories.Category, 0, len(cr.byID))
	for _, category := range cr.byID {
		copied := *category
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (cr *FakeCategoryRepo) Attach(_ context.Context, acronymID, categoryID int64) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	cr.pivots[pivotPair{acronymID, categoryID}] = struct{}{}
	return nil
}

func (cr *FakeCategoryRepo) Detach(_ context.Context, acronymID, categoryID int64) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	delete(cr.pivots, pivotPair{acronymID, categoryID})
	return nil
}

func (cr *FakeCategoryRepo) CategoriesFor(_ context.Context, acronymID int64) ([]*categories.Category, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	var list []*categories.Category
	for pair := range cr.pivots {
		if pair.acronymID != acronymID {
			continue
		}
		copied := *cr.byID[pair.categoryID]
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (cr *FakeCategoryRepo) AcronymsFor(ctx context.Context, categoryID int64) ([]*acronyms.Acronym, error) {
	cr.lock.Lock()
	var ids []int64
	for pair := range cr.pivots {
		if pair.categoryID == categoryID {
			ids = append(ids, pair.acronymID)
		}
	}
	cr.lock.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var list []*acronyms.Acronym
	for _, id := range ids {
		acronym, err := cr.acronyms.GetByID(ctx, id)
		if err != nil {
			continue
		}
		list = append(list, acronym)
	}
	return list, nil
}
