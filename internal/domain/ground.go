package domain

import (
	"strconv"
	"strings"
)

// GroundType is the seismic ground classification. The zero value is invalid
// so an unset field never silently selects a table.
type GroundType int

const (
	GroundTypeI GroundType = iota + 1
	GroundTypeII
	GroundTypeIII
)

// GroundTypes lists every valid ground type in order of increasing softness.
var GroundTypes = []GroundType{GroundTypeI, GroundTypeII, GroundTypeIII}

// Valid reports whether g is one of I, II or III.
func (g GroundType) Valid() bool {
	return g >= GroundTypeI && g <= GroundTypeIII
}

// String returns the roman numeral form used as a table key: "I", "II" or "III".
func (g GroundType) String() string {
	switch g {
	case GroundTypeI:
		return "I"
	case GroundTypeII:
		return "II"
	case GroundTypeIII:
		return "III"
	default:
		return "GroundType(" + strconv.Itoa(int(g)) + ")"
	}
}

// Label returns the classifier's display form, e.g. "Type II".
func (g GroundType) Label() string {
	if !g.Valid() {
		return "unknown"
	}
	return "Type " + g.String()
}

// index maps a valid ground type onto the fixed table arrays.
func (g GroundType) index() int {
	return int(g) - 1
}

// ParseGroundType accepts "I", "II", "III" or "Type I", "Type II", "Type III",
// case-insensitive and ignoring surrounding whitespace.
func ParseGroundType(s string) (GroundType, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimSpace(strings.TrimPrefix(v, "TYPE"))
	switch v {
	case "I":
		return GroundTypeI, nil
	case "II":
		return GroundTypeII, nil
	case "III":
		return GroundTypeIII, nil
	default:
		return 0, &InvalidGroundTypeError{Value: s}
	}
}

// MarshalText encodes the ground type as its roman numeral.
func (g GroundType) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, &InvalidGroundTypeError{Value: g.String()}
	}
	return []byte(g.String()), nil
}

// UnmarshalText accepts any form understood by ParseGroundType.
func (g *GroundType) UnmarshalText(text []byte) error {
	parsed, err := ParseGroundType(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
