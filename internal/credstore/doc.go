// Package credstore reads and writes stored exchange API credentials.
//
// Records live in the api_credentials table; key and secret are encrypted
// at rest with AES-256-GCM and decrypted only for the duration of one
// exchange session. The store never returns secret material inside a
// CredentialRecord.
//
// Expected schema:
//
//	CREATE TABLE api_credentials (
//	    id                   uuid PRIMARY KEY,
//	    user_id              bigint NOT NULL,
//	    name                 text NOT NULL,
//	    encrypted_api_key    text NOT NULL,
//	    encrypted_api_secret text NOT NULL,
//	    is_active            boolean NOT NULL DEFAULT true,
//	    created_at           timestamptz NOT NULL DEFAULT now(),
//	    last_used            timestamptz
//	);
package credstore
