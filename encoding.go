package humansize

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler using the canonical
// "<magnitude> <symbol>" form. Together with UnmarshalText this lets
// Size fields ride through TOML, JSON and any other text-aware codec
// without extra glue.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer, storing the size as its canonical
// text form.
func (s Size) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner, accepting the canonical text form as
// string or []byte.
func (s *Size) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("scanning size: unsupported type %T", src)
	}
}
