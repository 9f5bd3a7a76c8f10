package faculty

import "errors"

var ErrFacultyNotFound = errors.New("faculty not found")
