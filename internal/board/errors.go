package board

import "errors"

var (
	ErrUnknownContainer   = errors.New("unknown container")
	ErrCatalogDestination = errors.New("catalog cannot be a drop destination")
	ErrIndexOutOfRange    = errors.New("index out of range")
)
