package authz

import (
	"context"
	"log/slog"

	"github.com/nmehta/movebot/internal/model"
)

// Allowlist authorizes users by chat id. An empty list denies everyone;
// the bot must be explicitly told who may use it.
type Allowlist struct {
	ids    map[int64]struct{}
	logger *slog.Logger
}

// NewAllowlist builds an Allowlist from configured user ids.
func NewAllowlist(userIDs []int64, logger *slog.Logger) *Allowlist {
	if logger == nil {
		logger = slog.Default()
	}

	ids := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		ids[id] = struct{}{}
	}

	return &Allowlist{ids: ids, logger: logger}
}

// Authorize reports whether the user is on the allow-list. Denied
// attempts are logged with enough identity to investigate.
func (a *Allowlist) Authorize(ctx context.Context, user model.User) bool {
	if _, ok := a.ids[user.ID]; ok {
		return true
	}

	a.logger.Warn("unauthorized access attempt",
		"user_id", user.ID,
		"username", user.Username,
		"first_name", user.FirstName,
	)
	return false
}
