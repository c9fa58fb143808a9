package humansize

import "fmt"

// Multiple is a named scale factor relating a magnitude to an absolute
// byte count. The decimal multiples scale by powers of 1000, the binary
// multiples by powers of 1024. The set is closed; Byte (factor 1) is
// shared by both families.
type Multiple int

const (
	Byte Multiple = iota

	// Decimal multiples, powers of 1000.
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte

	// Binary multiples, powers of 1024.
	Kibibyte
	Mebibyte
	Gibibyte
	Tebibyte
	Pebibyte
)

// Bytes returns the exact scale factor of the multiple relative to one
// byte. Factors are integer powers of 1000 or 1024, so conversions stay
// exact up to the point they are multiplied into a float64. An invalid
// Multiple reports 0.
func (m Multiple) Bytes() uint64 {
	switch m {
	case Byte:
		return 1
	case Kilobyte:
		return 1000
	case Megabyte:
		return 1000 * 1000
	case Gigabyte:
		return 1000 * 1000 * 1000
	case Terabyte:
		return 1000 * 1000 * 1000 * 1000
	case Petabyte:
		return 1000 * 1000 * 1000 * 1000 * 1000
	case Kibibyte:
		return 1024
	case Mebibyte:
		return 1024 * 1024
	case Gibibyte:
		return 1024 * 1024 * 1024
	case Tebibyte:
		return 1024 * 1024 * 1024 * 1024
	case Pebibyte:
		return 1024 * 1024 * 1024 * 1024 * 1024
	default:
		return 0
	}
}

// Symbol returns the canonical short form of the multiple (e.g. "kB").
// This is the form Parse and ParseMultiple recognize. An invalid
// Multiple reports "".
func (m Multiple) Symbol() string {
	switch m {
	case Byte:
		return "B"
	case Kilobyte:
		return "kB"
	case Megabyte:
		return "MB"
	case Gigabyte:
		return "GB"
	case Terabyte:
		return "TB"
	case Petabyte:
		return "PB"
	case Kibibyte:
		return "KiB"
	case Mebibyte:
		return "MiB"
	case Gibibyte:
		return "GiB"
	case Tebibyte:
		return "TiB"
	case Pebibyte:
		return "PiB"
	default:
		return ""
	}
}

// Name returns the full name of the multiple (e.g. "kilobyte").
func (m Multiple) Name() string {
	switch m {
	case Byte:
		return "byte"
	case Kilobyte:
		return "kilobyte"
	case Megabyte:
		return "megabyte"
	case Gigabyte:
		return "gigabyte"
	case Terabyte:
		return "terabyte"
	case Petabyte:
		return "petabyte"
	case Kibibyte:
		return "kibibyte"
	case Mebibyte:
		return "mebibyte"
	case Gibibyte:
		return "gibibyte"
	case Tebibyte:
		return "tebibyte"
	case Pebibyte:
		return "pebibyte"
	default:
		return ""
	}
}

// String returns the multiple's symbol.
func (m Multiple) String() string {
	return m.Symbol()
}

// ParseMultiple resolves a symbol string to its Multiple. Matching is
// exact and case-sensitive ("kB" is a kilobyte, "KiB" a kibibyte; "KB"
// is not recognized). Unrecognized input fails with an error wrapping
// ErrUnknownMultiple and carrying the offending text.
func ParseMultiple(s string) (Multiple, error) {
	switch s {
	case "B":
		return Byte, nil
	case "kB":
		return Kilobyte, nil
	case "MB":
		return Megabyte, nil
	case "GB":
		return Gigabyte, nil
	case "TB":
		return Terabyte, nil
	case "PB":
		return Petabyte, nil
	case "KiB":
		return Kibibyte, nil
	case "MiB":
		return Mebibyte, nil
	case "GiB":
		return Gibibyte, nil
	case "TiB":
		return Tebibyte, nil
	case "PiB":
		return Pebibyte, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMultiple)
	}
}
