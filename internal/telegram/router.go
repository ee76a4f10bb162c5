package telegram

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// CallbackHandler handles one callback query.
type CallbackHandler func(ctx context.Context, cb CallbackQuery)

// Router long-polls for updates and dispatches callback queries to
// handlers registered by callback data token.
type Router struct {
	client      *Client
	logger      *slog.Logger
	pollTimeout time.Duration

	handlers map[string]CallbackHandler
}

// NewRouter creates a router over the given client.
func NewRouter(client *Client, pollTimeout time.Duration, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	if pollTimeout <= 0 {
		pollTimeout = 30 * time.Second
	}
	return &Router{
		client:      client,
		logger:      logger,
		pollTimeout: pollTimeout,
		handlers:    make(map[string]CallbackHandler),
	}
}

// HandleCallback registers a handler for an exact callback data token.
// Registration happens before Run; the map is read-only afterwards.
func (r *Router) HandleCallback(data string, h CallbackHandler) {
	r.handlers[data] = h
}

// Run polls for updates until ctx is cancelled. Poll errors are logged
// and retried after a short pause rather than stopping the loop.
func (r *Router) Run(ctx context.Context) error {
	var offset int64

	r.logger.Info("update loop started", "poll_timeout", r.pollTimeout)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("update loop stopped")
			return ctx.Err()
		default:
		}

		updates, err := r.client.GetUpdates(ctx, offset, r.pollTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			r.logger.Error("get updates failed", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			r.dispatch(ctx, u)
		}
	}
}

func (r *Router) dispatch(ctx context.Context, u Update) {
	if u.CallbackQuery == nil {
		return
	}

	cb := *u.CallbackQuery
	h, ok := r.handlers[cb.Data]
	if !ok {
		r.logger.Debug("unhandled callback", "data", cb.Data, "user_id", cb.From.ID)
		return
	}

	// Each press runs independently so one slow flow does not block
	// the poll loop.
	go h(ctx, cb)
}
