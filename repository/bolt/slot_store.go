package bolt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/agendadesk/backend/domain"
	"github.com/agendadesk/backend/repository"
)

const slotBucket = "slots"

// SlotStore is a BoltDB-backed implementation of repository.SlotStore. Each
// slot is a whole JSON blob written on every mutation of the in-memory state.
type SlotStore struct {
	db     *bolt.DB
	bucket []byte
	logger *zap.Logger
}

// Open initializes the Bolt file and ensures the slot bucket exists.
func Open(path string, logger *zap.Logger) (*SlotStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(slotBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &SlotStore{
		db:     db,
		bucket: []byte(slotBucket),
		logger: logger,
	}, nil
}

// Load decodes the slot's blob into out. A missing slot yields
// domain.ErrSlotNotFound; an undecodable one yields a wrapped INVALID error.
// Either way the caller keeps its fallback value.
func (s *SlotStore) Load(key string, out any) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return err
	}
	if raw == nil {
		return domain.ErrSlotNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("discarding corrupt slot blob", zap.String("slot", key), zap.Error(err))
		return domain.WrapError(domain.ErrCodeInvalid, "corrupt slot blob", err)
	}
	return nil
}

// Save encodes the value and writes it under the slot key.
func (s *SlotStore) Save(key string, value any) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), payload)
	})
}

// Size returns the number of populated slots, used by the connection monitor.
func (s *SlotStore) Size() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the Bolt database.
func (s *SlotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ repository.SlotStore = (*SlotStore)(nil)
