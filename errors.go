package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the sentinel every index violation unwraps to.
	ErrOutOfRange = errors.New("bit index out of range")

	// ErrReleased is reported when an operation touches a vector whose
	// storage has been released.
	ErrReleased = errors.New("bit vector has been released")
)

// ErrIndexOutOfRange indicates a bit index at or beyond the vector's bit
// length. An index equal to the bit length is out of range; there is no
// off-by-one tolerance.
//
// Unwrap returns ErrOutOfRange for errors.Is matching.
type ErrIndexOutOfRange struct {
	Index  int
	BitLen int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index out of range: %d with bit length %d", e.Index, e.BitLen)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrInvalidBitLength indicates a negative bit length passed to New.
type ErrInvalidBitLength struct {
	BitLen int
}

func (e *ErrInvalidBitLength) Error() string {
	return fmt.Sprintf("invalid bit length: %d", e.BitLen)
}
