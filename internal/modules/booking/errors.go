package booking

import "errors"

var (
	ErrInvalidInput = errors.New("invalid booking input")
	ErrRoomNotFound = errors.New("room not found")
	ErrConflict     = errors.New("time slot already booked")
)
