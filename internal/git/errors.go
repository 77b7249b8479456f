package git

import "errors"

// Repository lookup errors
var (
	ErrNotRepository = errors.New("folder is not inside a git repository")
	ErrNoRemote      = errors.New("remote is not configured")
)
