package domain

import "fmt"

// tableSet holds one reference table per ground type, indexed by GroundType.index().
type tableSet struct {
	breakpoints []float64
	factors     [3][]float64
}

// Built-in site-factor tables. Each quantity shares one breakpoint axis across
// the three ground types.
var (
	pgaTables = tableSet{
		breakpoints: []float64{0.00, 0.10, 0.20, 0.30, 0.40, 0.50, 0.80},
		factors: [3][]float64{
			{1.2, 1.2, 1.2, 1.1, 1.1, 1.0, 1.0},
			{1.6, 1.6, 1.4, 1.2, 1.0, 0.9, 0.85},
			{2.5, 2.5, 1.7, 1.2, 0.9, 0.8, 0.75},
		},
	}

	faTables = tableSet{
		breakpoints: []float64{0.25, 0.50, 0.75, 1.00, 1.25, 2.00},
		factors: [3][]float64{
			{1.2, 1.2, 1.1, 1.0, 1.0, 1.0},
			{1.6, 1.4, 1.2, 1.0, 0.9, 0.85},
			{2.5, 1.7, 1.2, 0.9, 0.8, 0.75},
		},
	}

	fvTables = tableSet{
		breakpoints: []float64{0.10, 0.20, 0.30, 0.40, 0.50, 0.80},
		factors: [3][]float64{
			{1.7, 1.6, 1.5, 1.4, 1.4, 1.4},
			{2.4, 2.0, 1.8, 1.6, 1.5, 1.5},
			{3.5, 3.2, 2.8, 2.4, 2.4, 2.0},
		},
	}
)

func tablesFor(q Quantity) (*tableSet, bool) {
	switch q {
	case QuantityPGA:
		return &pgaTables, true
	case QuantitySs:
		return &faTables, true
	case QuantityS1:
		return &fvTables, true
	default:
		return nil, false
	}
}

// Table returns a copy of the built-in reference table for q and g.
func Table(q Quantity, g GroundType) (ReferenceTable, error) {
	if !g.Valid() {
		return ReferenceTable{}, &InvalidGroundTypeError{Value: g.String()}
	}
	set, ok := tablesFor(q)
	if !ok {
		return ReferenceTable{}, &InvalidTableError{Reason: "no table for " + q.String()}
	}
	return NewReferenceTable(set.breakpoints, set.factors[g.index()])
}

// ValidateTables checks every built-in table. It returns the first failure.
func ValidateTables() error {
	for _, q := range Quantities {
		for _, g := range GroundTypes {
			if _, err := Table(q, g); err != nil {
				return fmt.Errorf("%s table for ground type %s: %w", q.FactorName(), g, err)
			}
		}
	}
	return nil
}
