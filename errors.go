package lazyseg

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("lazyseg: invalid configuration")
	// ErrInvalidSize signals a tree construction with a non-positive length.
	ErrInvalidSize = errors.New("lazyseg: invalid size")
	// ErrIndexOutOfRange signals a point access outside of [0, Len()).
	ErrIndexOutOfRange = errors.New("lazyseg: index out of range")
	// ErrInvalidRange signals a range expression which cannot be parsed.
	ErrInvalidRange = errors.New("lazyseg: invalid range")
)
