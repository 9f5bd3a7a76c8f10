package batch

import "errors"

var (
	ErrBatchNotFound   = errors.New("training batch not found")
	ErrTrainerNotFound = errors.New("trainer not found")
)
