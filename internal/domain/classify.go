package domain

import (
	"encoding/json"
	"math"
)

// Characteristic-period thresholds, in seconds. Both are lower-inclusive:
// TG == 0.2 is Type II and TG == 0.6 is Type III.
const (
	TypeIIThreshold  = 0.2
	TypeIIIThreshold = 0.6
)

// Layer is one soil layer: thickness H in metres and shear-wave velocity Vs in m/s.
type Layer struct {
	Thickness     float64 `json:"thickness"`
	ShearVelocity float64 `json:"shear_velocity"`
}

// Ratio is a layer's H/Vs travel time. Defined is false when Vs is zero.
type Ratio struct {
	Value   float64
	Defined bool
}

// MarshalJSON encodes an undefined ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON decodes null as an undefined ratio.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Ratio{Value: v, Defined: true}
	return nil
}

// ClassificationRow is the classifier's output for one layer. TG is the
// characteristic period accumulated down to and including this layer.
type ClassificationRow struct {
	Thickness     float64    `json:"thickness"`
	ShearVelocity float64    `json:"shear_velocity"`
	Ratio         Ratio      `json:"h_over_vs"`
	TG            float64    `json:"tg"`
	GroundType    GroundType `json:"ground_type"`
}

// ClassifyTG maps a characteristic period onto a ground type.
func ClassifyTG(tg float64) GroundType {
	switch {
	case tg < TypeIIThreshold:
		return GroundTypeI
	case tg < TypeIIIThreshold:
		return GroundTypeII
	default:
		return GroundTypeIII
	}
}

// ClassifyGroundType walks layers top-down, accumulating sum(H/Vs), and
// classifies TG = 4*sum at every depth. One row is returned per layer in input
// order. A layer with Vs == 0 gets an undefined ratio and contributes nothing
// to the sum. All layers are validated before any row is produced.
func ClassifyGroundType(layers []Layer) ([]ClassificationRow, error) {
	for i, l := range layers {
		if err := validateLayer(i, l); err != nil {
			return nil, err
		}
	}

	rows := make([]ClassificationRow, 0, len(layers))
	sum := 0.0
	for _, l := range layers {
		var ratio Ratio
		if l.ShearVelocity != 0 {
			ratio = Ratio{Value: l.Thickness / l.ShearVelocity, Defined: true}
			sum += ratio.Value
		}

		tg := 4 * sum
		rows = append(rows, ClassificationRow{
			Thickness:     l.Thickness,
			ShearVelocity: l.ShearVelocity,
			Ratio:         ratio,
			TG:            tg,
			GroundType:    ClassifyTG(tg),
		})
	}
	return rows, nil
}

func validateLayer(i int, l Layer) error {
	invalid := func(reason string) error {
		return &InvalidLayerError{Index: i, Thickness: l.Thickness, ShearVelocity: l.ShearVelocity, Reason: reason}
	}
	switch {
	case math.IsNaN(l.Thickness) || math.IsInf(l.Thickness, 0):
		return invalid("thickness is not finite")
	case math.IsNaN(l.ShearVelocity):
		return invalid("shear velocity is NaN")
	case l.Thickness < 0:
		return invalid("negative thickness")
	case l.ShearVelocity < 0:
		return invalid("negative shear velocity")
	}
	return nil
}

// DefaultLayers returns the 12-layer reference borehole profile.
func DefaultLayers() []Layer {
	return []Layer{
		{4, 281.25},
		{2, 290},
		{15, 301},
		{6, 291.8333333},
		{5, 311.8},
		{19, 330.5263158},
		{4, 456.25},
		{1, 481},
		{1, 740},
		{1, 679},
		{3, 938.6666667},
		{11, 1705.818182},
	}
}
