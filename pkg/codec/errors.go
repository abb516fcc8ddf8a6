package codec

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHex = errors.New("malformed hex")
	ErrIO           = errors.New("i/o failure")
	ErrWindow       = errors.New("invalid window size")
)

// InvalidCharError reports a non-hex byte found before the last hex digit of a window.
type InvalidCharError struct {
	Offset int64
	Char   byte
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%s: invalid character %q at offset %d", ErrMalformedHex, e.Char, e.Offset)
}

func (e *InvalidCharError) Is(target error) bool {
	return target == ErrMalformedHex
}

// IOError wraps a failure of the underlying reader or writer.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIO, e.Op, e.Err)
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}
