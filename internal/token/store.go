package token

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// Storage keys. A single session record is all the client ever persists.
var (
	tokenKey      = []byte("token")
	expirationKey = []byte("token_expiration")
)

// Provider is the read-side capability the HTTP client depends on
type Provider interface {
	Token() (string, error)
}

// Store persists the bearer token in a local badger database so a session
// survives process restarts. It is written only by the auth service and read
// by the HTTP client on every request.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the token database at path
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}
	return &Store{db: db}, nil
}

// Token returns the persisted bearer token, or "" when none is stored
func (s *Store) Token() (string, error) {
	return s.get(tokenKey)
}

// Expiration returns the raw expiration timestamp stored with the token
func (s *Store) Expiration() (string, error) {
	return s.get(expirationKey)
}

func (s *Store) get(key []byte) (string, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			value = string(v)
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to read token store: %w", err)
	}
	return value, nil
}

// Save stores the token and its expiration, replacing any previous session
func (s *Store) Save(token, expiration string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(tokenKey, []byte(token)); err != nil {
			return err
		}
		return txn.Set(expirationKey, []byte(expiration))
	})
	if err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Clear removes the persisted session
func (s *Store) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(tokenKey); err != nil {
			return err
		}
		return txn.Delete(expirationKey)
	})
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
