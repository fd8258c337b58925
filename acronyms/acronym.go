// Package acronyms holds the content entity the site exists for.
package acronyms

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no acronym matches the lookup.
var ErrNotFound = errors.New("acronym not found")

// Acronym is one definition, owned by the identity that created it.
type Acronym struct {
	ID     int64  `json:"id"`
	Short  string `json:"short"`
	Long   string `json:"long"`
	UserID string `json:"user_id"`
}

// Repo is the persistence port for acronyms.
type Repo interface {
	Create(ctx context.Context, acronym *Acronym) error
	GetByID(ctx context.Context, id int64) (*Acronym, error)
	Update(ctx context.Context, acronym *Acronym) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Acronym, error)
	ListByUser(ctx context.Context, userID string) ([]*Acronym, error)
	// Search matches the term exactly against either the short or the long
	// form.
	Search(ctx context.Context, term string) ([]*Acronym, error)
	First(ctx context.Context) (*Acronym, error)
	SortedByShort(ctx context.Context) ([]*Acronym, error)
}
