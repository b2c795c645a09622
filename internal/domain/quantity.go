package domain

import (
	"strconv"
	"strings"
)

// Quantity names the scalar input whose site factor is being looked up.
type Quantity int

const (
	// QuantityPGA is peak ground acceleration; its factor is Fpga.
	QuantityPGA Quantity = iota + 1
	// QuantitySs is the short-period (0.2 s) spectral acceleration; its factor is Fa.
	QuantitySs
	// QuantityS1 is the long-period (1.0 s) spectral acceleration; its factor is Fv.
	QuantityS1
)

// Quantities lists every quantity in lookup order.
var Quantities = []Quantity{QuantityPGA, QuantitySs, QuantityS1}

func (q Quantity) Valid() bool {
	return q >= QuantityPGA && q <= QuantityS1
}

// String returns the input name: "pga", "ss" or "s1".
func (q Quantity) String() string {
	switch q {
	case QuantityPGA:
		return "pga"
	case QuantitySs:
		return "ss"
	case QuantityS1:
		return "s1"
	default:
		return "Quantity(" + strconv.Itoa(int(q)) + ")"
	}
}

// FactorName returns the name of the derived coefficient: "Fpga", "Fa" or "Fv".
func (q Quantity) FactorName() string {
	switch q {
	case QuantityPGA:
		return "Fpga"
	case QuantitySs:
		return "Fa"
	case QuantityS1:
		return "Fv"
	default:
		return q.String()
	}
}

// ParseQuantity accepts input names (pga, ss, s1) or factor names (fpga, fa, fv).
func ParseQuantity(s string) (Quantity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pga", "fpga":
		return QuantityPGA, true
	case "ss", "fa":
		return QuantitySs, true
	case "s1", "fv":
		return QuantityS1, true
	default:
		return 0, false
	}
}
