package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prakura/hrms-backend-go/internal/pkg/storage"
)

const DefaultKey = "prakura_hrms_db"

// DB owns the snapshot persisted under one key of a storage backend. Every
// method takes the same lock, so a load-mutate-save cycle started by
// WithTransaction never interleaves with another read or write.
type DB struct {
	backend  storage.Backend
	key      string
	quota    int
	seed     func() Snapshot
	observer func(size int)
	mu       sync.Mutex
}

type Option func(*DB)

func WithKey(key string) Option {
	return func(db *DB) {
		if key != "" {
			db.key = key
		}
	}
}

// WithQuota caps the encoded snapshot size in bytes. Zero means no limit.
func WithQuota(bytes int) Option {
	return func(db *DB) { db.quota = bytes }
}

// WithSeed replaces the snapshot written when the key does not exist yet.
func WithSeed(seed func() Snapshot) Option {
	return func(db *DB) { db.seed = seed }
}

// WithSizeObserver registers fn to receive the encoded size after each save.
func WithSizeObserver(fn func(size int)) Option {
	return func(db *DB) { db.observer = fn }
}

func NewDB(backend storage.Backend, opts ...Option) *DB {
	db := &DB{backend: backend, key: DefaultKey, seed: Seed}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func (db *DB) Key() string { return db.key }

// Load returns the persisted snapshot, writing and returning the seed when
// nothing has been stored yet.
func (db *DB) Load(ctx context.Context) (Snapshot, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.load(ctx)
}

// Save overwrites the persisted snapshot with s.
func (db *DB) Save(ctx context.Context, s Snapshot) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.save(ctx, s)
}

// WithTransaction runs fn on a freshly loaded snapshot and saves the result.
// Nothing is written when fn returns an error.
func (db *DB) WithTransaction(ctx context.Context, fn func(s *Snapshot) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	s, err := db.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&s); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	return db.save(ctx, s)
}

// View runs fn on a freshly loaded snapshot.
func (db *DB) View(ctx context.Context, fn func(s Snapshot) error) error {
	s, err := db.Load(ctx)
	if err != nil {
		return err
	}
	return fn(s)
}

// Reset overwrites the persisted snapshot with the seed.
func (db *DB) Reset(ctx context.Context) (Snapshot, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	s := db.seed()
	if err := db.save(ctx, s); err != nil {
		return Snapshot{}, err
	}
	slog.Info("snapshot reset to seed data", "key", db.key)
	return s, nil
}

func (db *DB) load(ctx context.Context) (Snapshot, error) {
	raw, err := db.backend.Get(ctx, db.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		s := db.seed()
		if err := db.save(ctx, s); err != nil {
			return Snapshot{}, err
		}
		slog.Info("snapshot initialized with seed data", "key", db.key, "driver", db.backend.Driver())
		return s, nil
	}
	if err != nil {
		return Snapshot{}, &StorageError{Op: "load", Key: db.key, Err: err}
	}

	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		slog.Error("persisted snapshot is corrupt", "key", db.key, "error", err)
		return Snapshot{}, &StorageError{Op: "load", Key: db.key, Err: fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)}
	}
	s.normalize()
	return s, nil
}

func (db *DB) save(ctx context.Context, s Snapshot) error {
	s.normalize()
	raw, err := json.Marshal(s)
	if err != nil {
		return &StorageError{Op: "save", Key: db.key, Err: err}
	}
	if db.quota > 0 && len(raw) > db.quota {
		return &StorageError{Op: "save", Key: db.key, Err: fmt.Errorf("%w: %d bytes, limit %d", ErrQuotaExceeded, len(raw), db.quota)}
	}
	if err := db.backend.Put(ctx, db.key, raw); err != nil {
		return &StorageError{Op: "save", Key: db.key, Err: err}
	}
	if db.observer != nil {
		db.observer(len(raw))
	}
	return nil
}
