package models

import (
	"fmt"
	"strings"
)

// OptionVariant selects the call or put leg of every pricing kernel.
type OptionVariant int

const (
	Call OptionVariant = iota + 1
	Put
)

func ParseOptionVariant(s string) (OptionVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOptionVariant, s)
}

func (v OptionVariant) Valid() bool {
	return v == Call || v == Put
}

// Sign is +1 for Call and -1 for Put.
func (v OptionVariant) Sign() float64 {
	if v == Put {
		return -1
	}
	return 1
}

func (v OptionVariant) String() string {
	switch v {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionVariant(%d)", int(v))
}

func (v OptionVariant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOptionVariant, int(v))
	}
	return []byte(v.String()), nil
}

func (v *OptionVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseOptionVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func checkVariant(v OptionVariant) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOptionVariant, int(v))
	}
	return nil
}
