package model

import (
	"time"

	"github.com/google/uuid"
)

// User identifies a chat user. It is owned by the chat transport and
// passed by value into the flow; the flow never mutates it.
type User struct {
	ID        int64  // Transport-assigned user id
	Username  string // Display handle, may be empty
	FirstName string // Display name, may be empty
}

// CredentialRecord is stored exchange API credential metadata.
// Secret material never appears here in plaintext.
type CredentialRecord struct {
	ID        uuid.UUID // Primary key (from the credential store)
	UserID    int64     // Owning chat user
	Name      string    // User-chosen label (e.g., "delta-main")
	CreatedAt time.Time // Record creation time
	LastUsed  time.Time // Last successful decryption, zero if never used
}

// MoveContract is one displayable move option contract after filtering.
type MoveContract struct {
	Symbol      string  // Exchange symbol (e.g., "BTC-MOVE-1")
	StrikePrice string  // Strike as the exchange sent it, displayed verbatim
	MarkPrice   float64 // Current mark price, 0 if the exchange omitted it
	Turnover24h float64 // 24h turnover, 0 if the exchange omitted it
}
