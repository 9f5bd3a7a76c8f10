package storage

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("storage: key not found")

// Backend is a flat key-value store holding opaque values.
type Backend interface {
	// Get returns ErrKeyNotFound when key has never been written or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Driver names the implementation, e.g. "local" or "s3".
	Driver() string

	Close() error
}

const (
	DriverMemory   = "memory"
	DriverLocal    = "local"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)
