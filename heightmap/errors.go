package heightmap

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the root of every loader error. Use errors.Is to test
// for the kind and the more specific sentinels below for the cause.
var ErrMalformedInput = errors.New("heightmap: malformed input")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrInvalidElevation indicates a character outside {a..z, S, E}.
	ErrInvalidElevation = fmt.Errorf("%w: invalid elevation code", ErrMalformedInput)
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = fmt.Errorf("%w: missing start marker 'S'", ErrMalformedInput)
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = fmt.Errorf("%w: missing end marker 'E'", ErrMalformedInput)
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = fmt.Errorf("%w: duplicate start marker 'S'", ErrMalformedInput)
	// ErrDuplicateEnd indicates more than one 'E' marker.
	ErrDuplicateEnd = fmt.Errorf("%w: duplicate end marker 'E'", ErrMalformedInput)
)
