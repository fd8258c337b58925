package pgacronymrepo

import (
	"context"
	"database/sql"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/tilhub/acronyms/acronyms"
	"github.com/tilhub/acronyms/internal/dbx"
)

const selectColumns = `SELECT id, short, long, user_id FROM acronyms `

var _ acronyms.Repo = (*PostgresAcronymRepo)(nil)

type PostgresAcronymRepo struct {
	db dbx.DBTX
}

func NewPostgresAcronymRepo(db dbx.DBTX) *PostgresAcronymRepo {
	return &PostgresAcronymRepo{db: db}
}

func (r *PostgresAcronymRepo) Create(ctx context.Context, acronym *acronyms.Acronym) error {
	query := `INSERT INTO acronyms (short, long, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, acronym.Short, acronym.Long, acronym.UserID).Scan(&acronym.ID); err != nil {
		return pkgerrors.Wrap(err, "[PostgresAcronymRepo.Create] insert")
	}
	return nil
}

func (r *PostgresAcronymRepo) GetByID(ctx context.Context, id int64) (*acronyms.Acronym, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectColumns+`WHERE id = $1`, id))
}

func (r *PostgresAcronymRepo) Update(ctx context.Context, acronym *acronyms.Acronym) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE acronyms SET short = $2, long = $3, user_id = $4 WHERE id = $1`,
		acronym.ID, acronym.Short, acronym.Long, acronym.UserID)
	if err != nil {
		return pkgerrors.Wrap(err, "[PostgresAcronymRepo.Update] update")
	}
	return r.requireRow(res)
}

func (r *PostgresAcronymRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM acronyms WHERE id = $1`, id)
	if err != nil {
		return pkgerrors.Wrap(err, "[PostgresAcronymRepo.Delete] delete")
	}
	return r.requireRow(res)
}

func (r *PostgresAcronymRepo) List(ctx context.Context) ([]*acronyms.Acronym, error) {
	return r.scanMany(ctx, selectColumns+`ORDER BY id`)
}

func (r *PostgresAcronymRepo) ListByUser(ctx context.Context, userID string) ([]*acronyms.Acronym, error) {
	return r.scanMany(ctx, selectColumns+`WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *PostgresAcronymRepo) Search(ctx context.Context, term string) ([]*acronyms.Acronym, error) {
	return r.scanMany(ctx, selectColumns+`WHERE short = $1 OR long = $1 ORDER BY id`, term)
}

func (r *PostgresAcronymRepo) First(ctx context.Context) (*acronyms.Acronym, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectColumns+`ORDER BY id LIMIT 1`))
}

func (r *PostgresAcronymRepo) SortedByShort(ctx context.Context) ([]*acronyms.Acronym, error) {
	return r.scanMany(ctx, selectColumns+`ORDER BY short ASC`)
}

func (r *PostgresAcronymRepo) requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return pkgerrors.Wrap(err, "[PostgresAcronymRepo] rows affected")
	}
	if affected == 0 {
		return acronyms.ErrNotFound
	}
	return nil
}

func (r *PostgresAcronymRepo) scanOne(row *sql.Row) (*acronyms.Acronym, error) {
	acronym := &acronyms.Acronym{}
	err := row.Scan(&acronym.ID, &acronym.Short, &acronym.Long, &acronym.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, acronyms.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "[PostgresAcronymRepo] scan")
	}
	return acronym, nil
}

func (r *PostgresAcronymRepo) scanMany(ctx context.Context, query string, args ...any) ([]*acronyms.Acronym, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "[PostgresAcronymRepo] query")
	}
	defer rows.Close()

	var list []*acronyms.Acronym
	for rows.Next() {
		acronym := &acronyms.Acronym{}
		if err := rows.Scan(&acronym.ID, &acronym.Short, &acronym.Long, &acronym.UserID); err != nil {
			return nil, pkgerrors.Wrap(err, "[PostgresAcronymRepo] scan")
		}
		list = append(list, acronym)
	}
	return list, rows.Err()
}
