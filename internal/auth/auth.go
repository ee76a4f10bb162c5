// Package auth provides Delta Exchange API authentication using
// HMAC-SHA256 signatures.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Signer holds the API key pair for signing requests. The secret exists
// only in memory for the life of one exchange session and is never logged.
type Signer struct {
	apiKey    string
	apiSecret string
}

// NewSigner creates a signer for a decrypted credential pair.
func NewSigner(apiKey, apiSecret string) *Signer {
	return &Signer{apiKey: apiKey, apiSecret: apiSecret}
}

// SignRequest generates authentication headers for an exchange API request.
func (s *Signer) SignRequest(method, path, query, body string) map[string]string {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	return map[string]string{
		"api-key":   s.apiKey,
		"timestamp": timestamp,
		"signature": s.Signature(method, path, timestamp, query, body),
	}
}

// Signature creates an HMAC-SHA256 signature for the given request.
// Message format: method + path + timestamp + query + body
func (s *Signer) Signature(method, path, timestamp, query, body string) string {
	message := method + path + timestamp
	if query != "" {
		message += query
	}
	if body != "" {
		message += body
	}

	mac := hmac.New(sha256.New, []byte(s.apiSecret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
