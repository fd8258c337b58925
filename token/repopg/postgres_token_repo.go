package pgtokenrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/tilhub/acronyms/internal/dbx"
	"github.com/tilhub/acronyms/token"
)

var _ token.Repo = (*PostgresTokenRepo)(nil)

type PostgresTokenRepo struct {
	db dbx.DBTX
}

func NewPostgresTokenRepo(db dbx.DBTX) *PostgresTokenRepo {
	return &PostgresTokenRepo{db: db}
}

func (r *PostgresTokenRepo) Create(ctx context.Context, tok *token.Token) error {
	if tok.ID == "" {
		tok.ID = uuid.New().String()
	}

	query := `INSERT INTO tokens (id, value, user_id)
	          VALUES ($1, $2, $3)
	          RETURNING created_at`

	if err := r.db.QueryRowContext(ctx, query, tok.ID, tok.Value, tok.UserID).Scan(&tok.CreatedAt); err != nil {
		return pkgerrors.Wrap(err, "[PostgresTokenRepo.Create] insert")
	}
	return nil
}

func (r *PostgresTokenRepo) GetByValue(ctx context.Context, value string) (*token.Token, error) {
	query := `SELECT id, value, user_id, created_at FROM tokens WHERE value = $1`

	tok := &token.Token{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(&tok.ID, &tok.Value, &tok.UserID, &tok.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, token.ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "[PostgresTokenRepo.GetByValue] scan")
	}
	return tok, nil
}
