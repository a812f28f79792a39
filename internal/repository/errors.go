package repository

import "errors"

// ErrNotFound is returned by lookups that miss. Handlers map it to 404.
var ErrNotFound = errors.New("not found")
