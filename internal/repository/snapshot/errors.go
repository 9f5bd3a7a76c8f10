package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage matches every *StorageError through errors.Is.
	ErrStorage         = errors.New("storage error")
	ErrCorruptSnapshot = errors.New("persisted snapshot is not valid JSON")
	ErrQuotaExceeded   = errors.New("snapshot exceeds storage quota")
)

// StorageError reports a failed read or write of the persisted snapshot.
type StorageError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s snapshot %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
