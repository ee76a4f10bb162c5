package credstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nmehta/movebot/internal/model"
)

// ErrNotFound is returned when a credential id has no stored record.
var ErrNotFound = errors.New("credential not found")

// Store reads API credential records from Postgres.
type Store struct {
	pool   *pgxpool.Pool
	cipher *Cipher
	logger *slog.Logger
}

// New creates a credential store.
func New(pool *pgxpool.Pool, cipher *Cipher, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, cipher: cipher, logger: logger}
}

// ListByUser returns the user's active credential records in stored
// order (newest first). Secret material is not included.
func (s *Store) ListByUser(ctx context.Context, userID int64) ([]model.CredentialRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, created_at, last_used
		FROM api_credentials
		WHERE user_id = $1 AND is_active
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}
	defer rows.Close()

	var records []model.CredentialRecord
	for rows.Next() {
		var rec model.CredentialRecord
		var lastUsed *time.Time
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.CreatedAt, &lastUsed); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		if lastUsed != nil {
			rec.LastUsed = *lastUsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	s.logger.Debug("retrieved credentials", "user_id", userID, "count", len(records))

	return records, nil
}

// DecryptByID recovers the plaintext key pair for one stored credential.
// Successful decryption touches the record's last_used timestamp.
func (s *Store) DecryptByID(ctx context.Context, id uuid.UUID) (apiKey, apiSecret string, err error) {
	var encKey, encSecret string
	err = s.pool.QueryRow(ctx, `
		SELECT encrypted_api_key, encrypted_api_secret
		FROM api_credentials
		WHERE id = $1`,
		id,
	).Scan(&encKey, &encSecret)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("query credential %s: %w", id, err)
	}

	apiKey, err = s.cipher.Decrypt(encKey)
	if err != nil {
		return "", "", fmt.Errorf("decrypt api key: %w", err)
	}
	apiSecret, err = s.cipher.Decrypt(encSecret)
	if err != nil {
		return "", "", fmt.Errorf("decrypt api secret: %w", err)
	}

	// last_used is advisory; a failed touch must not fail the flow.
	if _, err := s.pool.Exec(ctx, `UPDATE api_credentials SET last_used = now() WHERE id = $1`, id); err != nil {
		s.logger.Warn("failed to update last_used", "credential_id", id, "error", err)
	}

	return apiKey, apiSecret, nil
}

// Create encrypts and stores a new credential, returning its id.
func (s *Store) Create(ctx context.Context, userID int64, name, apiKey, apiSecret string) (uuid.UUID, error) {
	encKey, err := s.cipher.Encrypt(apiKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encrypt api key: %w", err)
	}
	encSecret, err := s.cipher.Encrypt(apiSecret)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encrypt api secret: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO api_credentials (id, user_id, name, encrypted_api_key, encrypted_api_secret)
		VALUES ($1, $2, $3, $4, $5)`,
		id, userID, name, encKey, encSecret,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert credential: %w", err)
	}

	s.logger.Info("created api credential", "credential_id", id, "user_id", userID)

	return id, nil
}
