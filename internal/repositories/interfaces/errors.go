package interfaces

import "errors"

// ErrNotFound is returned by every repository lookup that references an
// unknown entity id. Callers branch on it with errors.Is.
var ErrNotFound = errors.New("not found")
