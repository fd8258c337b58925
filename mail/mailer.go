// Package mail is the outbound notification collaborator. Transport is not
// part of this service; the server is wired with whichever Dispatcher the
// deployment provides.
package mail

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tilhub/acronyms/users"
)

// Dispatcher delivers out-of-band notifications.
type Dispatcher interface {
	SendPasswordReset(ctx context.Context, user *users.User, resetLink string) error
}

var _ Dispatcher = (*LogDispatcher)(nil)

// LogDispatcher writes the notification to the log instead of sending it.
// Used in development and as the default when no SMTP account is configured.
type LogDispatcher struct {
	log zerolog.Logger
}

func NewLogDispatcher(log zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) SendPasswordReset(_ context.Context, user *users.User, resetLink string) error {
	d.log.Info().
		Str("username", user.Username).
		Str("link", resetLink).
		Msg("password reset requested")
	return nil
}
