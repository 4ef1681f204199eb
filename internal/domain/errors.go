package domain

import (
	"errors"
	"fmt"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomNotFoundError struct {
	Name string
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room %q not found", e.Name)
}

func (e *RoomNotFoundError) Unwrap() error {
	return ErrRoomNotFound
}
