package humansize

import "errors"

// Parse failure kinds. Each error returned by Parse wraps exactly one
// of these sentinels, with the offending input text attached, so
// callers can dispatch on errors.Is and still show the bad substring.
var (
	// ErrEmptyInput reports input that was empty or all whitespace.
	ErrEmptyInput = errors.New("input is empty")

	// ErrInvalidNumber reports a leading token that is not a valid
	// numeric literal.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrMissingMultiple reports a numeric literal with no multiple
	// symbol after it.
	ErrMissingMultiple = errors.New("missing multiple")

	// ErrUnknownMultiple reports a symbol token that is not one of the
	// recognized multiples.
	ErrUnknownMultiple = errors.New("unknown multiple")

	// ErrTrailingCharacters reports unconsumed input after the multiple
	// symbol.
	ErrTrailingCharacters = errors.New("trailing characters")
)

// Conversion failure kinds, returned by the checked integer
// conversions on Size.
var (
	// ErrOverflow reports a byte count outside the range of the
	// requested integer type, including negative counts requested as
	// unsigned.
	ErrOverflow = errors.New("byte count overflows integer type")

	// ErrNotInteger reports a byte count that is not a whole number
	// when an integral result was requested.
	ErrNotInteger = errors.New("byte count is not a whole number")
)
