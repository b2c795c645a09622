package domain

import (
	"fmt"
	"math"
)

// ReferenceTable is an ordered set of (breakpoint, factor) pairs. Breakpoints
// are strictly increasing and Factors is index-aligned with them.
type ReferenceTable struct {
	Breakpoints []float64 `json:"breakpoints"`
	Factors     []float64 `json:"factors"`
}

// NewReferenceTable validates and copies the given breakpoints and factors.
func NewReferenceTable(breakpoints, factors []float64) (ReferenceTable, error) {
	if err := validateTable(breakpoints, factors); err != nil {
		return ReferenceTable{}, err
	}
	return ReferenceTable{
		Breakpoints: append([]float64(nil), breakpoints...),
		Factors:     append([]float64(nil), factors...),
	}, nil
}

// Interpolate returns the boundary-clamped, piecewise-linear factor for value.
func (t ReferenceTable) Interpolate(value float64) (float64, error) {
	return Interpolate(value, t.Breakpoints, t.Factors)
}

// Len returns the number of breakpoints.
func (t ReferenceTable) Len() int { return len(t.Breakpoints) }

// Interpolate looks up value in a breakpoint/factor table.
//
// Values at or below the first breakpoint return the first factor and values at
// or above the last return the last factor. Otherwise the interval
// [breakpoints[i], breakpoints[i+1]) containing value is interpolated linearly,
// so a value equal to an interior breakpoint returns that breakpoint's factor
// exactly. A NaN value is treated as not supplied.
func Interpolate(value float64, breakpoints, factors []float64) (float64, error) {
	if err := validateTable(breakpoints, factors); err != nil {
		return 0, err
	}
	if math.IsNaN(value) {
		return 0, &MissingInputError{Input: "interpolation value"}
	}
	return interpolate(value, breakpoints, factors), nil
}

// interpolate assumes a validated table and a non-NaN value.
func interpolate(value float64, breakpoints, factors []float64) float64 {
	last := len(breakpoints) - 1
	if value <= breakpoints[0] {
		return factors[0]
	}
	if value >= breakpoints[last] {
		return factors[last]
	}

	for i := 0; i < last; i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		if lo <= value && value < hi {
			if value == lo {
				return factors[i]
			}
			return factors[i] + (value-lo)*(factors[i+1]-factors[i])/(hi-lo)
		}
	}

	// Unreachable for a validated table: the clamps and the half-open scan
	// together cover the whole real line.
	return factors[last]
}

func validateTable(breakpoints, factors []float64) error {
	if len(breakpoints) != len(factors) {
		return &InvalidTableError{Reason: fmt.Sprintf("%d breakpoints but %d factors", len(breakpoints), len(factors))}
	}
	if len(breakpoints) < 2 {
		return &InvalidTableError{Reason: fmt.Sprintf("need at least 2 breakpoints, got %d", len(breakpoints))}
	}
	for i, b := range breakpoints {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return &InvalidTableError{Reason: fmt.Sprintf("breakpoint %d is not finite", i)}
		}
		if f := factors[i]; math.IsNaN(f) || math.IsInf(f, 0) {
			return &InvalidTableError{Reason: fmt.Sprintf("factor %d is not finite", i)}
		}
		if i > 0 && b <= breakpoints[i-1] {
			return &InvalidTableError{Reason: fmt.Sprintf("breakpoints not strictly increasing at index %d (%g <= %g)", i, b, breakpoints[i-1])}
		}
	}
	return nil
}
