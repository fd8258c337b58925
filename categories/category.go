// Package categories holds the tag entity and the synchronizer that
// reconciles acronym tag membership against the pivot table.
package categories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/acronyms"
)

// ErrNotFound is returned when no category matches the lookup.
var ErrNotFound = errors.New("category not found")

// Category is a tag. Matching is by exact, case-sensitive name; no trimming
// or case folding is applied anywhere in the flow.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Repo is the persistence port for categories. FindOrCreate must be atomic:
// under concurrent synchronization of two acronyms that both introduce the
// same new name, exactly one row may be created, and both callers get it.
type Repo interface {
	FindOrCreate(ctx context.Context, name string) (*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

// PivotRepo owns the acronym/category join rows. Attach is a no-op when the
// pair already exists; Detach is a no-op when it does not.
type PivotRepo interface {
	Attach(ctx context.Context, acronymID, categoryID int64) error
	Detach(ctx context.Context, acronymID, categoryID int64) error
	CategoriesFor(ctx context.Context, acronymID int64) ([]*Category, error)
	AcronymsFor(ctx context.Context, categoryID int64) ([]*acronyms.Acronym, error)
}
