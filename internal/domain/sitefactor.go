package domain

// SiteFactor interpolates the site factor for quantity q on ground type g.
// The ground type is checked before any table is touched.
func SiteFactor(g GroundType, q Quantity, value float64) (float64, error) {
	if !g.Valid() {
		return 0, &InvalidGroundTypeError{Value: g.String()}
	}
	set, ok := tablesFor(q)
	if !ok {
		return 0, &InvalidTableError{Reason: "no table for " + q.String()}
	}
	return Interpolate(value, set.breakpoints, set.factors[g.index()])
}

// PGAFactor returns Fpga for the given peak ground acceleration.
func PGAFactor(g GroundType, pga float64) (float64, error) {
	return SiteFactor(g, QuantityPGA, pga)
}

// Fa returns the short-period site factor for the given Ss.
func Fa(g GroundType, ss float64) (float64, error) {
	return SiteFactor(g, QuantitySs, ss)
}

// Fv returns the long-period site factor for the given S1.
func Fv(g GroundType, s1 float64) (float64, error) {
	return SiteFactor(g, QuantityS1, s1)
}

// SiteConditions binds a ground type to the scalar inputs supplied so far.
// A nil input has not been supplied; requesting its factor is an error.
type SiteConditions struct {
	GroundType GroundType `json:"ground_type"`
	PGA        *float64   `json:"pga,omitempty"`
	Ss         *float64   `json:"ss,omitempty"`
	S1         *float64   `json:"s1,omitempty"`
}

// SiteCoefficients holds the derived factors. Nil fields were not requested.
type SiteCoefficients struct {
	Fpga *float64 `json:"fpga,omitempty"`
	Fa   *float64 `json:"fa,omitempty"`
	Fv   *float64 `json:"fv,omitempty"`
}

// NewSiteConditions rejects an invalid ground type up front.
func NewSiteConditions(g GroundType) (*SiteConditions, error) {
	if !g.Valid() {
		return nil, &InvalidGroundTypeError{Value: g.String()}
	}
	return &SiteConditions{GroundType: g}, nil
}

// Set supplies the scalar input for q.
func (s *SiteConditions) Set(q Quantity, value float64) {
	v := value
	switch q {
	case QuantityPGA:
		s.PGA = &v
	case QuantitySs:
		s.Ss = &v
	case QuantityS1:
		s.S1 = &v
	}
}

// Input returns the supplied value for q, or a MissingInputError.
func (s *SiteConditions) Input(q Quantity) (float64, error) {
	var p *float64
	switch q {
	case QuantityPGA:
		p = s.PGA
	case QuantitySs:
		p = s.Ss
	case QuantityS1:
		p = s.S1
	}
	if p == nil {
		return 0, &MissingInputError{Input: q.String()}
	}
	return *p, nil
}

// Factor returns the site factor derived from the supplied input for q.
func (s *SiteConditions) Factor(q Quantity) (float64, error) {
	v, err := s.Input(q)
	if err != nil {
		return 0, err
	}
	return SiteFactor(s.GroundType, q, v)
}

// Coefficients derives every factor whose input has been supplied. It fails
// with MissingInputError only when no input at all has been supplied.
func (s *SiteConditions) Coefficients() (SiteCoefficients, error) {
	if !s.GroundType.Valid() {
		return SiteCoefficients{}, &InvalidGroundTypeError{Value: s.GroundType.String()}
	}
	if s.PGA == nil && s.Ss == nil && s.S1 == nil {
		return SiteCoefficients{}, &MissingInputError{Input: "pga, ss or s1"}
	}

	var out SiteCoefficients
	for _, q := range Quantities {
		if _, err := s.Input(q); err != nil {
			continue
		}
		f, err := s.Factor(q)
		if err != nil {
			return SiteCoefficients{}, err
		}
		switch q {
		case QuantityPGA:
			out.Fpga = &f
		case QuantitySs:
			out.Fa = &f
		case QuantityS1:
			out.Fv = &f
		}
	}
	return out, nil
}
