package pgurepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/tilhub/acronyms/internal/dbx"
	"github.com/tilhub/acronyms/users"
)

const uniqueViolation = "23505"

var _ users.Repo = (*PostgresUserRepo)(nil)

// PostgresUserRepo persists identities. The users.username unique index is
// what makes Create safe against concurrent registration of the same name.
type PostgresUserRepo struct {
	db dbx.DBTX
}

func NewPostgresUserRepo(db dbx.DBTX) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (r *PostgresUserRepo) Create(ctx context.Context, user *users.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `INSERT INTO users (id, name, username, password_hash)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Username, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return users.ErrDuplicateUsername
		}
		return pkgerrors.Wrap(err, "[PostgresUserRepo.Create] insert")
	}
	return nil
}

func (r *PostgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `SELECT id, name, username, password_hash, created_at
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `SELECT id, name, username, password_hash, created_at
	          FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresUserRepo) List(ctx context.Context) ([]*users.User, error) {
	query := `SELECT id, name, username, password_hash, created_at
	          FROM users ORDER BY username`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "[PostgresUserRepo.List] query")
	}
	defer rows.Close()

	var list []*users.User
	for rows.Next() {
		user := &users.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, pkgerrors.Wrap(err, "[PostgresUserRepo.List] scan")
		}
		list = append(list, user)
	}
	return list, rows.Err()
}

func (r *PostgresUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return pkgerrors.Wrap(err, "[PostgresUserRepo.UpdatePassword] update")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return pkgerrors.Wrap(err, "[PostgresUserRepo.UpdatePassword] rows affected")
	}
	if affected == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepo) scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "[PostgresUserRepo] scan")
	}
	return user, nil
}
