package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Each typed error below unwraps to one of these.
var (
	ErrInvalidGroundType = errors.New("invalid ground type")
	ErrMissingInput      = errors.New("missing input")
	ErrInvalidTable      = errors.New("invalid reference table")
	ErrInvalidLayer      = errors.New("invalid layer")
	ErrInvalidSpectrum   = errors.New("invalid spectrum parameters")
)

// InvalidGroundTypeError reports an unrecognized ground classification key.
type InvalidGroundTypeError struct {
	Value string
}

func (e *InvalidGroundTypeError) Error() string {
	return fmt.Sprintf("invalid ground type %q: want I, II or III", e.Value)
}

func (e *InvalidGroundTypeError) Unwrap() error { return ErrInvalidGroundType }

// MissingInputError reports that a derived factor was requested before its
// scalar input was supplied.
type MissingInputError struct {
	Input string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s has not been supplied", e.Input)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// InvalidTableError reports a malformed reference table.
type InvalidTableError struct {
	Reason string
}

func (e *InvalidTableError) Error() string {
	return "invalid reference table: " + e.Reason
}

func (e *InvalidTableError) Unwrap() error { return ErrInvalidTable }

// InvalidLayerError reports a layer with a negative or non-numeric thickness or velocity.
// Index is the zero-based position of the layer in the input.
type InvalidLayerError struct {
	Index         int
	Thickness     float64
	ShearVelocity float64
	Reason        string
}

func (e *InvalidLayerError) Error() string {
	return fmt.Sprintf("invalid layer %d (H=%g, Vs=%g): %s", e.Index, e.Thickness, e.ShearVelocity, e.Reason)
}

func (e *InvalidLayerError) Unwrap() error { return ErrInvalidLayer }

// InvalidSpectrumError reports spectrum parameters that cannot produce a curve.
type InvalidSpectrumError struct {
	Reason string
}

func (e *InvalidSpectrumError) Error() string {
	return "invalid spectrum parameters: " + e.Reason
}

func (e *InvalidSpectrumError) Unwrap() error { return ErrInvalidSpectrum }

// ErrorKind returns a short, stable label for err suitable for metrics and API
// responses. Unknown errors map to "internal".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidGroundType):
		return "invalid_ground_type"
	case errors.Is(err, ErrMissingInput):
		return "missing_input"
	case errors.Is(err, ErrInvalidTable):
		return "invalid_table"
	case errors.Is(err, ErrInvalidLayer):
		return "invalid_layer"
	case errors.Is(err, ErrInvalidSpectrum):
		return "invalid_spectrum"
	default:
		return "internal"
	}
}
