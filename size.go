// Package humansize provides a value type for human-readable byte
// sizes such as "1000 B", "1 kB" or "2.5 MiB", with parsing from text,
// formatting back to text, and conversion to absolute byte counts.
//
// A Size pairs a floating-point magnitude with a Multiple, one of the
// decimal (kB, MB, ... PB, powers of 1000) or binary (KiB, MiB, ...
// PiB, powers of 1024) multiples. The absolute byte count is always
// derived from those two fields, never stored, and is the sole key for
// equality and ordering: 1 kB equals 1000 B.
package humansize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Size is a byte size expressed as a magnitude and a multiple.
// Values are immutable after construction and safe to share.
type Size struct {
	magnitude float64
	multiple  Multiple
}

// New creates a Size from a magnitude and a multiple. The magnitude is
// unconstrained: negative sizes are representable, and NaN or infinite
// magnitudes are not rejected, though comparisons involving NaN are
// unreliable and such values do not survive formatting.
func New(magnitude float64, m Multiple) Size {
	return Size{magnitude: magnitude, multiple: m}
}

// FromBytes re-expresses an absolute byte count using the given
// multiple for display. The represented quantity is unchanged; only
// the textual form is, e.g. FromBytes(1500, Kilobyte) is "1.5 kB".
func FromBytes(bytes float64, m Multiple) Size {
	return Size{magnitude: bytes / float64(m.Bytes()), multiple: m}
}

// Magnitude returns the numeric quantity, e.g. the 1.5 in "1.5 kB".
func (s Size) Magnitude() float64 {
	return s.magnitude
}

// Multiple returns the multiple the magnitude is expressed in.
func (s Size) Multiple() Multiple {
	return s.multiple
}

// Bytes returns the absolute size in bytes, magnitude times scale
// factor. It is recomputed on every call and is the canonical value
// for comparison and integer extraction.
func (s Size) Bytes() float64 {
	return s.magnitude * float64(s.multiple.Bytes())
}

// Convert re-expresses the size using another multiple. The byte count
// is preserved up to float64 rounding: converting 100 MiB to Megabyte
// yields 104.8576 MB.
func (s Size) Convert(m Multiple) Size {
	return FromBytes(s.Bytes(), m)
}

// Uint32 returns the size as a whole number of bytes. It fails with
// ErrOverflow if the byte count is negative or does not fit in 32
// bits, and with ErrNotInteger if it is fractional.
func (s Size) Uint32() (uint32, error) {
	b, err := s.wholeBytes()
	if err != nil {
		return 0, err
	}
	if b < 0 || b >= 1<<32 {
		return 0, fmt.Errorf("%v bytes: %w", b, ErrOverflow)
	}
	return uint32(b), nil
}

// Uint64 returns the size as a whole number of bytes. It fails with
// ErrOverflow if the byte count is negative or does not fit in 64
// bits, and with ErrNotInteger if it is fractional.
func (s Size) Uint64() (uint64, error) {
	b, err := s.wholeBytes()
	if err != nil {
		return 0, err
	}
	if b < 0 || b >= 1<<64 {
		return 0, fmt.Errorf("%v bytes: %w", b, ErrOverflow)
	}
	return uint64(b), nil
}

// Int64 returns the size as a whole number of bytes. It fails with
// ErrOverflow if the byte count does not fit in a signed 64 bit
// integer, and with ErrNotInteger if it is fractional.
func (s Size) Int64() (int64, error) {
	b, err := s.wholeBytes()
	if err != nil {
		return 0, err
	}
	if b >= 1<<63 || b < -(1<<63) {
		return 0, fmt.Errorf("%v bytes: %w", b, ErrOverflow)
	}
	return int64(b), nil
}

func (s Size) wholeBytes() (float64, error) {
	b := s.Bytes()
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("%v bytes: %w", b, ErrOverflow)
	}
	if math.Trunc(b) != b {
		return 0, fmt.Errorf("%v bytes: %w", b, ErrNotInteger)
	}
	return b, nil
}

// Equal reports whether both sizes denote the same byte count,
// regardless of the multiples they are expressed in.
func (s Size) Equal(other Size) bool {
	return s.Bytes() == other.Bytes()
}

// Cmp compares two sizes by byte count, returning -1, 0 or 1.
func (s Size) Cmp(other Size) int {
	sb, ob := s.Bytes(), other.Bytes()
	switch {
	case sb < ob:
		return -1
	case sb > ob:
		return 1
	default:
		return 0
	}
}

// Less reports whether s denotes fewer bytes than other.
func (s Size) Less(other Size) bool {
	return s.Bytes() < other.Bytes()
}

// String formats the size as "<magnitude> <symbol>", e.g. "1.5 kB".
// The magnitude uses the shortest decimal form that round-trips the
// float64, so whole numbers carry no decimal point ("1000 B", never
// "1000.0 B") and Parse(s.String()) recovers the same value.
func (s Size) String() string {
	return strconv.FormatFloat(s.magnitude, 'f', -1, 64) + " " + s.multiple.Symbol()
}

// Parse parses a size from text. The grammar is a numeric literal
// followed by a multiple symbol, with optional whitespace before,
// between and after: "1kB" and " 1 kB " parse identically. Symbols
// match case-sensitively; see ParseMultiple.
//
// Malformed input fails with an error wrapping one of ErrEmptyInput,
// ErrInvalidNumber, ErrMissingMultiple, ErrUnknownMultiple or
// ErrTrailingCharacters, carrying the offending text.
func Parse(input string) (Size, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Size{}, ErrEmptyInput
	}

	// Consume the longest run of sign, digit and decimal-point
	// characters, then let ParseFloat rule on validity. This accepts
	// "1.", ".5" and "-2" and rejects "1.0.0" and "." with the number
	// error rather than a bogus multiple error.
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	magnitude, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Size{}, fmt.Errorf("%q: %w", input, ErrInvalidNumber)
	}

	rest := strings.TrimSpace(s[i:])
	if rest == "" {
		return Size{}, ErrMissingMultiple
	}
	if strings.IndexFunc(rest, unicode.IsSpace) >= 0 {
		return Size{}, fmt.Errorf("%q: %w", input, ErrTrailingCharacters)
	}
	m, err := ParseMultiple(rest)
	if err != nil {
		return Size{}, err
	}
	return New(magnitude, m), nil
}

// MustParse is like Parse but panics on malformed input. Use it for
// compile-time-known literals such as defaults and test fixtures.
func MustParse(input string) Size {
	s, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("humansize: MustParse(%q): %v", input, err))
	}
	return s
}
