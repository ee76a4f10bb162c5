package listing

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nmehta/movebot/internal/delta"
	"github.com/nmehta/movebot/internal/model"
)

// errMessageLimit caps user-visible error text; full detail goes to the log.
const errMessageLimit = 100

// Authorizer decides whether a user may run the flow.
type Authorizer interface {
	Authorize(ctx context.Context, user model.User) bool
}

// CredentialSource lists a user's stored credential records and decrypts
// one by id.
type CredentialSource interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CredentialRecord, error)
	DecryptByID(ctx context.Context, id uuid.UUID) (apiKey, apiSecret string, err error)
}

// ProductSource is one scoped exchange session bound to a decrypted
// credential. Every opened session must be closed exactly once.
type ProductSource interface {
	GetProducts(ctx context.Context, opts delta.GetProductsOptions) ([]delta.Product, error)
	Close()
}

// ClientFactory opens an exchange session for a decrypted credential pair.
type ClientFactory func(apiKey, apiSecret string) ProductSource

// Config holds listing flow settings.
type Config struct {
	// FetchTimeout bounds the exchange catalog request so a stalled
	// exchange cannot hang the interaction. Zero applies the default.
	FetchTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{FetchTimeout: 15 * time.Second}
}

// Service runs the credential-gated retrieval flow.
type Service struct {
	auth      Authorizer
	creds     CredentialSource
	newClient ClientFactory
	cfg       Config
	logger    *slog.Logger
}

// NewService creates the listing flow service.
func NewService(auth Authorizer, creds CredentialSource, newClient ClientFactory, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}
	return &Service{
		auth:      auth,
		creds:     creds,
		newClient: newClient,
		cfg:       cfg,
		logger:    logger,
	}
}

// ListMoves runs one request through the flow and returns its terminal
// outcome. Control moves strictly forward; any failure short-circuits.
func (s *Service) ListMoves(ctx context.Context, user model.User, asset string) Outcome {
	asset = strings.ToUpper(asset)
	out := s.listMoves(ctx, user, asset)

	// Audit record for every terminal state.
	s.logger.Info("user action",
		"user_id", user.ID,
		"action", "move_list_"+strings.ToLower(asset),
		"outcome", out.Kind.String(),
		"success", out.OK(),
	)

	return out
}

func (s *Service) listMoves(ctx context.Context, user model.User, asset string) Outcome {
	if !s.auth.Authorize(ctx, user) {
		return Outcome{Kind: OutcomeUnauthorized, Asset: asset}
	}

	records, err := s.creds.ListByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("credential lookup failed", "user_id", user.ID, "error", err)
		return Outcome{Kind: OutcomeFetchFailed, Asset: asset, ErrMessage: truncate(err.Error(), errMessageLimit)}
	}
	if len(records) == 0 {
		return Outcome{Kind: OutcomeNoCredentials, Asset: asset}
	}

	record, ok := SelectCredential(records)
	if !ok {
		return Outcome{Kind: OutcomeNoCredentials, Asset: asset}
	}

	apiKey, apiSecret, err := s.creds.DecryptByID(ctx, record.ID)
	if err != nil || apiKey == "" {
		s.logger.Error("credential decryption failed",
			"user_id", user.ID,
			"credential_id", record.ID,
			"error", err,
		)
		return Outcome{Kind: OutcomeDecryptFailed, Asset: asset}
	}

	products, err := s.fetch(ctx, apiKey, apiSecret)
	if err != nil {
		s.logger.Error("move options fetch failed", "asset", asset, "error", err)
		return Outcome{Kind: OutcomeFetchFailed, Asset: asset, ErrMessage: truncate(userMessage(err), errMessageLimit)}
	}

	contracts := Filter(products, asset, DisplayLimit)
	if len(contracts) == 0 {
		return Outcome{Kind: OutcomeEmpty, Asset: asset}
	}

	return Outcome{Kind: OutcomeListed, Asset: asset, Contracts: contracts}
}

// fetch opens one scoped exchange session, requests the move options
// catalog, and releases the session on every exit path. The bounded
// context keeps a stalled exchange from hanging the interaction.
func (s *Service) fetch(ctx context.Context, apiKey, apiSecret string) ([]delta.Product, error) {
	client := s.newClient(apiKey, apiSecret)
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	return client.GetProducts(ctx, delta.GetProductsOptions{ContractTypes: delta.ContractTypeMoveOptions})
}

// userMessage extracts the exchange's human-readable message when one
// exists; transport faults fall back to the error text.
func userMessage(err error) string {
	var apiErr *delta.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
