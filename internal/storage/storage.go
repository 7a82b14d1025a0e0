// Package storage defines the persistence interfaces for character sheets.
//
// Two independent keyspaces exist per game system: one holding character
// documents and one holding the optional credential records protecting
// them. No cross-keyspace transaction is taken; callers tolerate the brief
// window where one write is visible without the other.
//
// Implementations (e.g. bbolt) live in subpackages.
package storage

import (
	"context"
	"errors"

	"github.com/arkhamworks/investigator/internal/character"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// CharacterStore persists character documents keyed by game system and id.
type CharacterStore interface {
	PutCharacter(ctx context.Context, system, id string, doc character.Character) error
	GetCharacter(ctx context.Context, system, id string) (character.Character, error)
	CharacterExists(ctx context.Context, system, id string) (bool, error)
}
