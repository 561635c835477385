package catalog

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidStatus = errors.New("invalid room status")
	ErrInvalidQuery  = errors.New("invalid availability query")
)
