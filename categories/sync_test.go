package categories_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilhub/acronyms/acronyms"
	fakeacronymrepo "github.com/tilhub/acronyms/acronyms/repofake"
	"github.com/tilhub/acronyms/categories"
	fakecategoryrepo "github.com/tilhub/acronyms/categories/repofake"
)

type syncFixture struct {
	sync       *categories.Synchronizer
	categories *fakecategoryrepo.FakeCategoryRepo
	acronym    *acronyms.Acronym
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	acronymRepo := fakeacronymrepo.NewFakeAcronymRepo()
	categoryRepo := fakecategoryrepo.NewFakeCategoryRepo(acronymRepo)

	acronym := &acronyms.Acronym{Short: "OMG", Long: "Oh My God", UserID: "u1"}
	require.NoError(t, acronymRepo.Create(context.Background(), acronym))

	return &syncFixture{
		sync:       categories.NewSynchronizer(categoryRepo, categoryRepo),
		categories: categoryRepo,
		acronym:    acronym,
	}
}

func (f *syncFixture) names(t *testing.T) []string {
	t.Helper()
	attached, err := f.categories.CategoriesFor(context.Background(), f.acronym.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(attached))
	for _, category := range attached {
		names = append(names, category.Name)
	}
	return names
}

func TestSynchronizer_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches new names, creating categories on the way", func(t *testing.T) {
		f := newSyncFixture(t)

		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Teenager", "Internet"}))
		require.ElementsMatch(t, []string{"Teenager", "Internet"}, f.names(t))
	})

	t.Run("diffs against the stored set", func(t *testing.T) {
		f := newSyncFixture(t)

		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Teenager", "Internet"}))
		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Internet", "Slang"}))

		require.ElementsMatch(t, []string{"Internet", "Slang"}, f.names(t))

		// Detached categories themselves survive.
		all, err := f.categories.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
	})

	t.Run("empty desired set detaches everything", func(t *testing.T) {
		f := newSyncFixture(t)

		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Teenager"}))
		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, nil))
		require.Empty(t, f.names(t))
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		f := newSyncFixture(t)

		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Internet"}))
		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"internet"}))

		require.ElementsMatch(t, []string{"internet"}, f.names(t))
		all, err := f.categories.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("identical desired set is a no-op", func(t *testing.T) {
		f := newSyncFixture(t)

		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Internet"}))
		require.NoError(t, f.sync.Sync(ctx, f.acronym.ID, []string{"Internet"}))
		require.ElementsMatch(t, []string{"Internet"}, f.names(t))
	})
}

func TestSynchronizer_ConcurrentNewName(t *testing.T) {
	ctx := context.Background()
	acronymRepo := fakeacronymrepo.NewFakeAcronymRepo()
	categoryRepo := fakecategoryrepo.NewFakeCategoryRepo(acronymRepo)
	synchronizer := categories.NewSynchronizer(categoryRepo, categoryRepo)

	first := &acronyms.Acronym{Short: "BRB", Long: "Be Right Back", UserID: "u1"}
	second := &acronyms.Acronym{Short: "TTYL", Long: "Talk To You Later", UserID: "u1"}
	require.NoError(t, acronymRepo.Create(ctx, first))
	require.NoError(t, acronymRepo.Create(ctx, second))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, acronym := range []*acronyms.Acronym{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = synchronizer.Sync(ctx, acronym.ID, []string{"Chat"})
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// Both acronyms introduced the same unseen name; exactly one category
	// row may exist.
	all, err := categoryRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Chat", all[0].Name)

	tagged, err := categoryRepo.AcronymsFor(ctx, all[0].ID)
	require.NoError(t, err)
	require.Len(t, tagged, 2)
}
