package coach

import "errors"

// ErrNotFound is returned by repos for a missing record. Service methods
// translate it into the caller-facing sentinel where one exists.
var ErrNotFound = errors.New("coach: not found")
