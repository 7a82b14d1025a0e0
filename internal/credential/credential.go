// Package credential implements the password gate protecting character
// mutation.
//
// A character is protected if and only if a credential record exists for
// it; absence means "public", not "default password". The gate never stores
// a plaintext password or a bearer token: it keeps digest(password, salt)
// to prove knowledge of the password, and digest(referrer, token) to
// validate the most recently issued token without holding the token itself.
// Issuing a new token overwrites the stored secret, which invalidates every
// previously issued token for that character.
//
// This is soft access control deterring casual tampering, not strong
// authentication: the referrer is a client-generated correlation handle,
// not a secret-backed identity.
package credential

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Record is the stored credential for one character.
type Record struct {
	Hash   string `json:"hash"`   // digest(password, salt)
	Salt   string `json:"salt"`   // random per-record salt
	Secret string `json:"secret"` // digest(referrer, token) for the live token
}

// Store persists credential records keyed by game system and character id.
// Implementations return storage.ErrNotFound for missing records.
type Store interface {
	GetCredentials(ctx context.Context, system, id string) (Record, error)
	PutCredentials(ctx context.Context, system, id string, record Record) error
}

// Digest computes the one-way digest of the concatenated arguments. The
// scheme only requires the digest to be deterministic, preimage-resistant
// and practically collision-free; SHA-256 in hex satisfies all three.
func Digest(args ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(args, "")))
	return hex.EncodeToString(sum[:])
}
