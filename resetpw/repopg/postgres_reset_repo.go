package pgresetrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/tilhub/acronyms/internal/dbx"
	"github.com/tilhub/acronyms/resetpw"
)

var _ resetpw.Repo = (*PostgresResetRepo)(nil)

type PostgresResetRepo struct {
	db dbx.DBTX
}

func NewPostgresResetRepo(db dbx.DBTX) *PostgresResetRepo {
	return &PostgresResetRepo{db: db}
}

func (r *PostgresResetRepo) Create(ctx context.Context, token *resetpw.Token) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}

	query := `INSERT INTO reset_tokens (id, value, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING created_at`

	if err := r.db.QueryRowContext(ctx, query, token.ID, token.Value, token.UserID).Scan(&token.CreatedAt); err != nil {
		return pkgerrors.Wrap(err, "[PostgresResetRepo.Create] insert")
	}
	return nil
}

// Redeem deletes the row and returns its user id in one statement. Two
// concurrent redemptions of the same value race on the delete; exactly one
// sees the row.
func (r *PostgresResetRepo) Redeem(ctx context.Context, value string) (string, error) {
	query := `DELETE FROM reset_tokens WHERE value = $1 RETURNING user_id`

	var userID string
	err := r.db.QueryRowContext(ctx, query, value).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", resetpw.ErrInvalidToken
		}
		return "", pkgerrors.Wrap(err, "[PostgresResetRepo.Redeem] delete returning")
	}
	return userID, nil
}
