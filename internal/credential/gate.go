package credential

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/arkhamworks/investigator/internal/errors"
	"github.com/arkhamworks/investigator/internal/platform/id"
	"github.com/arkhamworks/investigator/internal/storage"
)

// Gate authorizes character mutation and issues bearer tokens.
type Gate struct {
	store Store
}

// NewGate creates a gate over the given credential store.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// SetPassword protects a character with a new password and returns a fresh
// token for the caller.
//
// When a credential record already exists the caller must prove possession
// of the live token; otherwise any caller may claim the unprotected
// character (first writer wins, by design). The whole record is replaced in
// a single write: fresh salt, fresh hash, fresh secret.
func (g *Gate) SetPassword(ctx context.Context, system, characterID, referrer, currentToken, password string) (string, error) {
	record, err := g.store.GetCredentials(ctx, system, characterID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Unprotected: anyone may claim it.
	case err != nil:
		return "", fmt.Errorf("get credentials: %w", err)
	default:
		if Digest(referrer, currentToken) != record.Secret {
			return "", denied(characterID)
		}
	}

	salt, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	token, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	next := Record{
		Hash:   Digest(password, salt),
		Salt:   salt,
		Secret: Digest(referrer, token),
	}
	if err := g.store.PutCredentials(ctx, system, characterID, next); err != nil {
		return "", fmt.Errorf("put credentials: %w", err)
	}
	return token, nil
}

// HasPassword reports whether the character is protected. This is metadata,
// not a secret; no authentication is required.
func (g *Gate) HasPassword(ctx context.Context, system, characterID string) (bool, error) {
	_, err := g.store.GetCredentials(ctx, system, characterID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get credentials: %w", err)
	}
	return true, nil
}

// VerifyPassword checks a password and issues a fresh token bound to the
// referrer. An unprotected character yields an empty token, meaning there
// is nothing to unlock. Issuing the token overwrites the stored secret and
// so invalidates all previously issued tokens.
func (g *Gate) VerifyPassword(ctx context.Context, system, characterID, referrer, password string) (string, error) {
	record, err := g.store.GetCredentials(ctx, system, characterID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credentials: %w", err)
	}

	if Digest(password, record.Salt) != record.Hash {
		return "", denied(characterID)
	}

	token, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	record.Secret = Digest(referrer, token)
	if err := g.store.PutCredentials(ctx, system, characterID, record); err != nil {
		return "", fmt.Errorf("put credentials: %w", err)
	}
	return token, nil
}

// Authorize allows a mutation when the character is unprotected or the
// presented referrer and token hash to the stored secret.
func (g *Gate) Authorize(ctx context.Context, system, characterID, referrer, token string) error {
	record, err := g.store.GetCredentials(ctx, system, characterID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get credentials: %w", err)
	}

	if Digest(referrer, token) != record.Secret {
		return denied(characterID)
	}
	return nil
}

// denied builds the single authorization failure. Wrong password, wrong
// token and stale referrer are deliberately indistinguishable.
func denied(characterID string) error {
	return apperrors.WithMetadata(apperrors.CodePermissionDenied,
		fmt.Sprintf("credential check failed for character %q", characterID),
		map[string]string{"ID": characterID})
}
