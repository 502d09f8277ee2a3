package cellterm

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateBuffer is returned when a buffer is created with a zero
	// or negative dimension
	ErrDegenerateBuffer = errors.New("cellterm: buffer dimensions must be positive")
	// ErrOutOfBounds is matched by every BoundsError
	ErrOutOfBounds = errors.New("cellterm: out of bounds")
	// ErrSinkWrite is matched by every SinkError
	ErrSinkWrite = errors.New("cellterm: sink write failed")
)

// BoundsError reports a write of Len cells at (Col, Row) which does not fit in
// a Cols x Rows buffer
type BoundsError struct {
	Col  int
	Row  int
	Len  int
	Cols int
	Rows int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cellterm: %d cells at col %d, row %d exceed %dx%d buffer",
		e.Len, e.Col, e.Row, e.Cols, e.Rows)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// SinkError wraps an error returned by the output sink. Op is either "write"
// or "flush"
type SinkError struct {
	Op  string
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("cellterm: sink %s: %v", e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

func (e *SinkError) Is(target error) bool {
	return target == ErrSinkWrite
}
