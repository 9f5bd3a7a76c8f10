package intern

import "errors"

var ErrInternNotFound = errors.New("intern not found")
