package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error. It is returned when a
// session with the requested id does not exist.
//
// The service layer translates it into app_errors.ErrNotFound so business logic
// stays independent of the storage backend.
var ErrNotFound = errors.New("repository: not found")
