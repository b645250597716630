package list

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is matched by every OutOfMemoryError.
var ErrOutOfMemory = errors.New("out of memory")

type OutOfMemoryError struct {
	live  int
	limit int
}

type PositionOutOfRangeError struct {
	position int
	length   int
}

func NewOutOfMemoryError(live, limit int) *OutOfMemoryError {
	return &OutOfMemoryError{live: live, limit: limit}
}

func NewPositionOutOfRangeError(position, length int) *PositionOutOfRangeError {
	return &PositionOutOfRangeError{position: position, length: length}
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("out of memory: %d of %d nodes in use", e.live, e.limit)
}

func (e *OutOfMemoryError) Is(target error) bool {
	return target == ErrOutOfMemory
}

func (e *PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [1, %d]", e.position, e.length)
}
