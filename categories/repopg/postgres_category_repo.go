package pgcategoryrepo

import (
	"context"
	"database/sql"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/tilhub/acronyms/acronyms"
	"github.com/tilhub/acronyms/categories"
	"github.com/tilhub/acronyms/internal/dbx"
)

var (
	_ categories.Repo      = (*PostgresCategoryRepo)(nil)
	_ categories.PivotRepo = (*PostgresCategoryRepo)(nil)
)

// PostgresCategoryRepo serves both the category and pivot ports from the
// categories and acronym_categories tables.
type PostgresCategoryRepo struct {
	db dbx.DBTX
}

func NewPostgresCategoryRepo(db dbx.DBTX) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{db: db}
}

// FindOrCreate is a single atomic find-or-insert. The no-op DO UPDATE makes
// the statement return the existing row's id instead of nothing when another
// connection created the name first.
func (r *PostgresCategoryRepo) FindOrCreate(ctx context.Context, name string) (*categories.Category, error) {
	query := `INSERT INTO categories (name) VALUES ($1)
	          ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id`

	category := &categories.Category{Name: name}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&category.ID); err != nil {
		return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.FindOrCreate] upsert")
	}
	return category, nil
}

func (r *PostgresCategoryRepo) GetByID(ctx context.Context, id int64) (*categories.Category, error) {
	category := &categories.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, categories.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.GetByID] scan")
	}
	return category, nil
}

func (r *PostgresCategoryRepo) List(ctx context.Context) ([]*categories.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.List] query")
	}
	defer rows.Close()

	var list []*categories.Category
	for rows.Next() {
		category := &categories.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.List] scan")
		}
		list = append(list, category)
	}
	return list, rows.Err()
}

func (r *PostgresCategoryRepo) Attach(ctx context.Context, acronymID, categoryID int64) error {
	query := `INSERT INTO acronym_categories (acronym_id, category_id)
	          VALUES ($1, $2)
	          ON CONFLICT DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, acronymID, categoryID); err != nil {
		return pkgerrors.Wrap(err, "[PostgresCategoryRepo.Attach] insert")
	}
	return nil
}

func (r *PostgresCategoryRepo) Detach(ctx context.Context, acronymID, categoryID int64) error {
	query := `DELETE FROM acronym_categories WHERE acronym_id = $1 AND category_id = $2`

	if _, err := r.db.ExecContext(ctx, query, acronymID, categoryID); err != nil {
		return pkgerrors.Wrap(err, "[PostgresCategoryRepo.Detach] delete")
	}
	return nil
}

func (r *PostgresCategoryRepo) CategoriesFor(ctx context.Context, acronymID int64) ([]*categories.Category, error) {
	query := `SELECT c.id, c.name
	          FROM categories c
	          JOIN acronym_categories ac ON ac.category_id = c.id
	          WHERE ac.acronym_id = $1
	          ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, acronymID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.CategoriesFor] query")
	}
	defer rows.Close()

	var list []*categories.Category
	for rows.Next() {
		category := &categories.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.CategoriesFor] scan")
		}
		list = append(list, category)
	}
	return list, rows.Err()
}

func (r *PostgresCategoryRepo) AcronymsFor(ctx context.Context, categoryID int64) ([]*acronyms.Acronym, error) {
	query := `SELECT a.id, a.short, a.long, a.user_id
	          FROM acronyms a
	          JOIN acronym_categories ac ON ac.acronym_id = a.id
	          WHERE ac.category_id = $1
	          ORDER BY a.id`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.AcronymsFor] query")
	}
	defer rows.Close()

	var list []*acronyms.Acronym
	for rows.Next() {
		acronym := &acronyms.Acronym{}
		if err := rows.Scan(&acronym.ID, &acronym.Short, &acronym.Long, &acronym.UserID); err != nil {
			return nil, pkgerrors.Wrap(err, "[PostgresCategoryRepo.AcronymsFor] scan")
		}
		list = append(list, acronym)
	}
	return list, rows.Err()
}
