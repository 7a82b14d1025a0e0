// Package api implements the character-sheet operations exposed over the
// transport: password management, character CRUD and rule-table lookup.
package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/arkhamworks/investigator/internal/character"
	"github.com/arkhamworks/investigator/internal/credential"
	apperrors "github.com/arkhamworks/investigator/internal/errors"
	"github.com/arkhamworks/investigator/internal/platform/id"
	"github.com/arkhamworks/investigator/internal/rules"
	"github.com/arkhamworks/investigator/internal/storage"
)

// Labeler resolves a rule-table key to a display label for a locale.
type Labeler func(key, locale string) string

// Service implements the character-sheet operations over a character store,
// a credential gate and the rule registry.
type Service struct {
	store         storage.CharacterStore
	gate          *credential.Gate
	registry      *rules.Registry
	labels        map[string]Labeler
	defaultSystem string
	newID         func() (string, error)
	tracer        trace.Tracer
}

// NewService wires the service dependencies. defaultSystem is used whenever a
// request omits the system namespace.
func NewService(store storage.CharacterStore, gate *credential.Gate, registry *rules.Registry, labels map[string]Labeler, defaultSystem string) *Service {
	return &Service{
		store:         store,
		gate:          gate,
		registry:      registry,
		labels:        labels,
		defaultSystem: defaultSystem,
		newID:         id.NewID,
		tracer:        otel.Tracer("investigator/api"),
	}
}

// resolveSystem defaults and validates the system namespace against the
// registry.
func (s *Service) resolveSystem(system string) (string, error) {
	system = strings.TrimSpace(system)
	if system == "" {
		system = s.defaultSystem
	}
	if _, err := s.registry.Load(system); err != nil {
		return "", err
	}
	return system, nil
}

func requireID(characterID string) (string, error) {
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return "", apperrors.New(apperrors.CodeCharacterEmptyID, "character id is required")
	}
	return characterID, nil
}

func (s *Service) span(ctx context.Context, op, system, characterID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("system", system),
		attribute.String("character.id", characterID),
	))
}

// SetPassword protects a character with a password and returns a fresh token.
// Changing an existing password requires the live token.
func (s *Service) SetPassword(ctx context.Context, system, characterID, referrer, currentToken, password string) (string, error) {
	system, err := s.resolveSystem(system)
	if err != nil {
		return "", err
	}
	characterID, err = requireID(characterID)
	if err != nil {
		return "", err
	}

	ctx, span := s.span(ctx, "SetPassword", system, characterID)
	defer span.End()

	return s.gate.SetPassword(ctx, system, characterID, referrer, currentToken, password)
}

// HasPassword reports whether a character is password protected.
func (s *Service) HasPassword(ctx context.Context, system, characterID string) (bool, error) {
	system, err := s.resolveSystem(system)
	if err != nil {
		return false, err
	}
	characterID, err = requireID(characterID)
	if err != nil {
		return false, err
	}

	ctx, span := s.span(ctx, "HasPassword", system, characterID)
	defer span.End()

	return s.gate.HasPassword(ctx, system, characterID)
}

// VerifyPassword checks a password and returns a fresh token bound to the
// referrer. Unprotected characters yield an empty token.
func (s *Service) VerifyPassword(ctx context.Context, system, characterID, referrer, password string) (string, error) {
	system, err := s.resolveSystem(system)
	if err != nil {
		return "", err
	}
	characterID, err = requireID(characterID)
	if err != nil {
		return "", err
	}

	ctx, span := s.span(ctx, "VerifyPassword", system, characterID)
	defer span.End()

	return s.gate.VerifyPassword(ctx, system, characterID, referrer, password)
}

// AddCharacter stores a new character document and returns its generated id.
// Generation retries until the id is collision free; each retry is a full
// existence check against the store.
func (s *Service) AddCharacter(ctx context.Context, system string, doc character.Character) (string, error) {
	system, err := s.resolveSystem(system)
	if err != nil {
		return "", err
	}

	ctx, span := s.span(ctx, "AddCharacter", system, "")
	defer span.End()

	for {
		characterID, err := s.newID()
		if err != nil {
			return "", apperrors.Wrap(apperrors.CodeUnknown, "generate character id", err)
		}
		exists, err := s.store.CharacterExists(ctx, system, characterID)
		if err != nil {
			return "", apperrors.Wrap(apperrors.CodeUnknown, "check character id", err)
		}
		if exists {
			continue
		}
		if err := s.store.PutCharacter(ctx, system, characterID, doc); err != nil {
			return "", apperrors.Wrap(apperrors.CodeUnknown, "put character", err)
		}
		return characterID, nil
	}
}

// GetCharacter fetches a character document by id.
func (s *Service) GetCharacter(ctx context.Context, system, characterID string) (character.Character, error) {
	system, err := s.resolveSystem(system)
	if err != nil {
		return character.Character{}, err
	}
	characterID, err = requireID(characterID)
	if err != nil {
		return character.Character{}, err
	}

	ctx, span := s.span(ctx, "GetCharacter", system, characterID)
	defer span.End()

	doc, err := s.store.GetCharacter(ctx, system, characterID)
	if errors.Is(err, storage.ErrNotFound) {
		return character.Character{}, notFound(characterID)
	}
	if err != nil {
		return character.Character{}, apperrors.Wrap(apperrors.CodeUnknown, "get character", err)
	}
	return doc, nil
}

// SetCharacter replaces an existing character document wholesale. The caller
// must hold the live token when the character is protected.
func (s *Service) SetCharacter(ctx context.Context, system, characterID, referrer, token string, doc character.Character) error {
	system, err := s.resolveSystem(system)
	if err != nil {
		return err
	}
	characterID, err = requireID(characterID)
	if err != nil {
		return err
	}

	ctx, span := s.span(ctx, "SetCharacter", system, characterID)
	defer span.End()

	exists, err := s.store.CharacterExists(ctx, system, characterID)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "check character", err)
	}
	if !exists {
		return notFound(characterID)
	}
	if err := s.gate.Authorize(ctx, system, characterID, referrer, token); err != nil {
		return err
	}
	if err := s.store.PutCharacter(ctx, system, characterID, doc); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "put character", err)
	}
	return nil
}

// UpdateCharacter shallow-merges a patch onto an existing character document.
// Present sections replace the stored ones wholesale; an empty patch is a
// no-op and skips the write entirely.
func (s *Service) UpdateCharacter(ctx context.Context, system, characterID, referrer, token string, patch character.Patch) error {
	system, err := s.resolveSystem(system)
	if err != nil {
		return err
	}
	characterID, err = requireID(characterID)
	if err != nil {
		return err
	}

	ctx, span := s.span(ctx, "UpdateCharacter", system, characterID)
	defer span.End()

	doc, err := s.store.GetCharacter(ctx, system, characterID)
	if errors.Is(err, storage.ErrNotFound) {
		return notFound(characterID)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "get character", err)
	}
	if err := s.gate.Authorize(ctx, system, characterID, referrer, token); err != nil {
		return err
	}
	if patch.Empty() {
		return nil
	}
	if err := s.store.PutCharacter(ctx, system, characterID, doc.Merge(patch)); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "put character", err)
	}
	return nil
}

// Systems lists the registered game system identifiers.
func (s *Service) Systems() []string {
	return s.registry.Systems()
}

func notFound(characterID string) error {
	return apperrors.WithMetadata(apperrors.CodeNotFound,
		fmt.Sprintf("character %q not found", characterID),
		map[string]string{"ID": characterID})
}
