package internal

import "errors"

var (
	ErrNoActiveContext = errors.New("watch: no active context on this goroutine")
	ErrAlreadyActive   = errors.New("watch: context is already active")
	ErrNotActive       = errors.New("watch: context is not the active context")
)
