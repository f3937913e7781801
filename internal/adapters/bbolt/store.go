// Package bbolt implements the ports.OverrideStore and ports.Keyring
// interfaces using bbolt (embedded B+ tree). Overrides live in one bucket
// keyed by shop name with JSON values; passkeys live in a second bucket keyed
// by the passkey itself. Writes are transactional; a crash mid-write cannot
// corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/civmc-shops/shopdex/internal/domain/market"
	"github.com/civmc-shops/shopdex/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketOverrides = []byte("overrides")
	bucketPasskeys  = []byte("passkeys")
)

// Store implements ports.OverrideStore and ports.Keyring backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveOverride overwrites the stored override for a shop.
func (s *Store) SaveOverride(shopName string, ov market.Override) error {
	if shopName == "" {
		return fmt.Errorf("empty shop name")
	}
	data, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("marshal override: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketOverrides)
		if err != nil {
			return err
		}
		return b.Put([]byte(shopName), data)
	})
}

// LoadOverrides returns every stored override keyed by shop name.
// A fresh database yields an empty map.
func (s *Store) LoadOverrides() (map[string]market.Override, error) {
	overrides := make(map[string]market.Override)

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOverrides)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var ov market.Override
			if err := json.Unmarshal(v, &ov); err != nil {
				return fmt.Errorf("unmarshal override %q: %w", k, err)
			}
			overrides[string(k)] = ov
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

// DeleteOverride removes a shop's override. Idempotent.
func (s *Store) DeleteOverride(shopName string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOverrides)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(shopName))
	})
}

// Resolve maps a passkey to its shop. Malformed or unknown passkeys fail
// cleanly with ok=false; the error return is reserved for storage faults.
func (s *Store) Resolve(passkey string) (string, bool, error) {
	if len(passkey) != ports.PasskeyLength {
		return "", false, nil
	}

	var shopName string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPasskeys)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(passkey)); v != nil {
			shopName = string(v)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return shopName, shopName != "", nil
}

// SetPasskey registers (or replaces) the passkey for a shop.
func (s *Store) SetPasskey(shopName, passkey string) error {
	if shopName == "" {
		return fmt.Errorf("empty shop name")
	}
	if len(passkey) != ports.PasskeyLength {
		return fmt.Errorf("passkey must be exactly %d characters", ports.PasskeyLength)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketPasskeys)
		if err != nil {
			return err
		}
		return b.Put([]byte(passkey), []byte(shopName))
	})
}

// RemovePasskeys removes every passkey registered for a shop. Idempotent.
func (s *Store) RemovePasskeys(shopName string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPasskeys)
		if b == nil {
			return nil
		}
		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			if string(v) == shopName {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
