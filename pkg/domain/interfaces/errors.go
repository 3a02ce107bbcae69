package interfaces

import "errors"

// ErrNotFound is wrapped by service adapters when the remote resource does not exist
var ErrNotFound = errors.New("resource not found")
