package categories

import (
	"context"

	"github.com/pkg/errors"
)

// Synchronizer reconciles an acronym's stored tag membership with a desired
// set of tag names via minimal attach/detach operations.
type Synchronizer struct {
	categories Repo
	pivot      PivotRepo
}

func NewSynchronizer(categoryRepo Repo, pivotRepo PivotRepo) *Synchronizer {
	return &Synchronizer{categories: categoryRepo, pivot: pivotRepo}
}

// Sync reads the acronym's current tag names fresh from storage, diffs them
// against desired by exact name, attaches the missing ones (creating unseen
// categories on the way) and detaches the rest. The batch is not atomic: the
// first failing operation aborts the remainder and what already applied
// stays applied.
func (s *Synchronizer) Sync(ctx context.Context, acronymID int64, desired []string) error {
	current, err := s.pivot.CategoriesFor(ctx, acronymID)
	if err != nil {
		return errors.Wrap(err, "[Synchronizer.Sync] read current")
	}

	currentByName := make(map[string]*Category, len(current))
	for _, category := range current {
		currentByName[category.Name] = category
	}
	desiredSet := make(map[string]struct{}, len(desired))
	for _, name := range desired {
		desiredSet[name] = struct{}{}
	}

	for _, name := range desired {
		if _, ok := currentByName[name]; ok {
			continue
		}
		category, err := s.categories.FindOrCreate(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "[Synchronizer.Sync] find or create %q", name)
		}
		if err := s.pivot.Attach(ctx, acronymID, category.ID); err != nil {
			return errors.Wrapf(err, "[Synchronizer.Sync] attach %q", name)
		}
	}

	for name, category := range currentByName {
		if _, ok := desiredSet[name]; ok {
			continue
		}
		if err := s.pivot.Detach(ctx, acronymID, category.ID); err != nil {
			return errors.Wrapf(err, "[Synchronizer.Sync] detach %q", name)
		}
	}
	return nil
}
