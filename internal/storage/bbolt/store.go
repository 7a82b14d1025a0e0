// Package bbolt provides a BoltDB-backed store for character documents and
// credential records.
package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arkhamworks/investigator/internal/character"
	"github.com/arkhamworks/investigator/internal/credential"
	"github.com/arkhamworks/investigator/internal/storage"
	"go.etcd.io/bbolt"
)

const (
	characterBucket  = "characters"
	credentialBucket = "credentials"
)

// Store provides a BoltDB-backed character and credential store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutCharacter persists a character document.
func (s *Store) PutCharacter(ctx context.Context, system, id string, doc character.Character) error {
	return s.put(ctx, characterBucket, system, id, doc)
}

// GetCharacter fetches a character document by id.
func (s *Store) GetCharacter(ctx context.Context, system, id string) (character.Character, error) {
	var doc character.Character
	if err := s.get(ctx, characterBucket, system, id, &doc); err != nil {
		return character.Character{}, err
	}
	return doc, nil
}

// CharacterExists reports whether a character document exists.
func (s *Store) CharacterExists(ctx context.Context, system, id string) (bool, error) {
	if err := s.check(ctx, system, id); err != nil {
		return false, err
	}

	exists := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(characterBucket))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", characterBucket)
		}
		exists = bucket.Get(recordKey(system, id)) != nil
		return nil
	})
	return exists, err
}

// PutCredentials persists a credential record.
func (s *Store) PutCredentials(ctx context.Context, system, id string, record credential.Record) error {
	return s.put(ctx, credentialBucket, system, id, record)
}

// GetCredentials fetches a credential record by character id.
func (s *Store) GetCredentials(ctx context.Context, system, id string) (credential.Record, error) {
	var record credential.Record
	if err := s.get(ctx, credentialBucket, system, id, &record); err != nil {
		return credential.Record{}, err
	}
	return record, nil
}

func (s *Store) put(ctx context.Context, bucketName, system, id string, value any) error {
	if err := s.check(ctx, system, id); err != nil {
		return err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", bucketName, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		return bucket.Put(recordKey(system, id), payload)
	})
}

func (s *Store) get(ctx context.Context, bucketName, system, id string, target any) error {
	if err := s.check(ctx, system, id); err != nil {
		return err
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", bucketName)
		}
		payload := bucket.Get(recordKey(system, id))
		if payload == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return fmt.Errorf("unmarshal %s record: %w", bucketName, err)
		}
		return nil
	})
}

func (s *Store) check(ctx context.Context, system, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(system) == "" {
		return fmt.Errorf("system is required")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("record id is required")
	}
	return nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{characterBucket, credentialBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func recordKey(system, id string) []byte {
	return []byte(system + "/" + id)
}
