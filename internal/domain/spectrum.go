package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SpectrumParams are the inputs to the design response spectrum.
type SpectrumParams struct {
	GroundType GroundType `json:"ground_type"`
	PGA        float64    `json:"pga"`
	Ss         float64    `json:"ss"`
	S1         float64    `json:"s1"`
}

// Spectrum is a design response spectrum sampled at Periods. Accelerations is
// index-aligned with Periods and expressed in g.
type Spectrum struct {
	GroundType    GroundType       `json:"ground_type"`
	Coefficients  SiteCoefficients `json:"coefficients"`
	As            float64          `json:"as"`
	SDS           float64          `json:"sds"`
	SD1           float64          `json:"sd1"`
	T0            float64          `json:"t0"`
	Ts            float64          `json:"ts"`
	Periods       []float64        `json:"periods"`
	Accelerations []float64        `json:"accelerations"`
}

// SpectrumPeriods returns n evenly spaced periods from 0 to maxPeriod inclusive.
func SpectrumPeriods(n int, maxPeriod float64) ([]float64, error) {
	if n < 2 {
		return nil, &InvalidSpectrumError{Reason: fmt.Sprintf("need at least 2 periods, got %d", n)}
	}
	if !(maxPeriod > 0) || math.IsInf(maxPeriod, 0) {
		return nil, &InvalidSpectrumError{Reason: fmt.Sprintf("max period must be positive and finite, got %g", maxPeriod)}
	}
	return floats.Span(make([]float64, n), 0, maxPeriod), nil
}

// DesignSpectrum builds the three-segment design spectrum:
//
//	As  = Fpga*PGA, SDS = Fa*Ss, SD1 = Fv*S1
//	Ts  = SD1/SDS,  T0  = 0.2*Ts
//	Csm = As + (SDS-As)*T/T0  for T < T0
//	Csm = SDS                 for T0 <= T <= Ts
//	Csm = SD1/T               for T > Ts
func DesignSpectrum(p SpectrumParams, periods []float64) (Spectrum, error) {
	if !p.GroundType.Valid() {
		return Spectrum{}, &InvalidGroundTypeError{Value: p.GroundType.String()}
	}
	if err := validateSpectrumParams(p); err != nil {
		return Spectrum{}, err
	}
	for i, t := range periods {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return Spectrum{}, &InvalidSpectrumError{Reason: fmt.Sprintf("period %d (%g) must be finite and non-negative", i, t)}
		}
	}

	site, err := NewSiteConditions(p.GroundType)
	if err != nil {
		return Spectrum{}, err
	}
	site.Set(QuantityPGA, p.PGA)
	site.Set(QuantitySs, p.Ss)
	site.Set(QuantityS1, p.S1)
	coeffs, err := site.Coefficients()
	if err != nil {
		return Spectrum{}, err
	}

	as := *coeffs.Fpga * p.PGA
	sds := *coeffs.Fa * p.Ss
	sd1 := *coeffs.Fv * p.S1
	ts := sd1 / sds
	t0 := 0.2 * ts

	accel := make([]float64, len(periods))
	for i, t := range periods {
		accel[i] = spectralAcceleration(t, as, sds, sd1, t0, ts)
	}

	return Spectrum{
		GroundType:    p.GroundType,
		Coefficients:  coeffs,
		As:            as,
		SDS:           sds,
		SD1:           sd1,
		T0:            t0,
		Ts:            ts,
		Periods:       append([]float64(nil), periods...),
		Accelerations: accel,
	}, nil
}

func spectralAcceleration(t, as, sds, sd1, t0, ts float64) float64 {
	switch {
	case t < t0:
		return as + (sds-as)*t/t0
	case t <= ts:
		return sds
	default:
		return sd1 / t
	}
}

func validateSpectrumParams(p SpectrumParams) error {
	check := func(name string, v float64, allowZero bool) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidSpectrumError{Reason: name + " must be finite"}
		}
		if v < 0 || (!allowZero && v == 0) {
			return &InvalidSpectrumError{Reason: fmt.Sprintf("%s must be positive, got %g", name, v)}
		}
		return nil
	}
	if err := check("pga", p.PGA, true); err != nil {
		return err
	}
	if err := check("ss", p.Ss, false); err != nil {
		return err
	}
	return check("s1", p.S1, false)
}
