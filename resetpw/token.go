// Package resetpw implements the single-use password-reset token flow.
package resetpw

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when a presented reset token does not match an
// outstanding row, including the case where it was already redeemed.
var ErrInvalidToken = errors.New("invalid or expired reset token")

// Token authorizes exactly one password change for its owning identity.
type Token struct {
	ID        string
	Value     string
	UserID    string
	CreatedAt time.Time
}

// Repo persists reset tokens. Redeem must delete the row and return its
// owning identity id in one atomic step, so two concurrent redemptions of the
// same value cannot both succeed; a miss is ErrInvalidToken.
type Repo interface {
	Create(ctx context.Context, token *Token) error
	Redeem(ctx context.Context, value string) (userID string, err error)
}
