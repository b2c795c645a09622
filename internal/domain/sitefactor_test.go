package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteFactor(t *testing.T) {
	tests := []struct {
		name     string
		ground   GroundType
		quantity Quantity
		value    float64
		expected float64
	}{
		// Worked examples from the reference script. The script's comments
		// claim 1.0, 1.0 and 1.4; the lookup rule gives these values.
		{"pga 0.6 type III", GroundTypeIII, QuantityPGA, 0.6, 0.8 + 0.1*(0.75-0.8)/0.3},
		{"fa 1.1 type III", GroundTypeIII, QuantitySs, 1.1, 0.86},
		{"fv 0.4 type III on breakpoint", GroundTypeIII, QuantityS1, 0.4, 2.4},

		{"pga clamp low", GroundTypeII, QuantityPGA, 0, 1.6},
		{"pga interior", GroundTypeII, QuantityPGA, 0.15, 1.5},
		{"pga clamp high", GroundTypeI, QuantityPGA, 1.2, 1.0},
		{"fa clamp low", GroundTypeI, QuantitySs, 0.1, 1.2},
		{"fa interior", GroundTypeII, QuantitySs, 0.625, 1.3},
		{"fa clamp high", GroundTypeII, QuantitySs, 3, 0.85},
		{"fv clamp low", GroundTypeII, QuantityS1, 0.05, 2.4},
		{"fv interior", GroundTypeI, QuantityS1, 0.25, 1.55},
		{"fv clamp high", GroundTypeIII, QuantityS1, 0.9, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SiteFactor(tt.ground, tt.quantity, tt.value)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestSiteFactor_Shortcuts(t *testing.T) {
	fpga, err := PGAFactor(GroundTypeIII, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 1.7, fpga)

	fa, err := Fa(GroundTypeI, 0.75)
	require.NoError(t, err)
	assert.Equal(t, 1.1, fa)

	fv, err := Fv(GroundTypeII, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 1.8, fv)
}

func TestSiteFactor_InvalidGroundType(t *testing.T) {
	for _, g := range []GroundType{0, 4, -1} {
		_, err := SiteFactor(g, QuantityPGA, 0.3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidGroundType)
	}
}

func TestSiteFactor_InvalidQuantity(t *testing.T) {
	_, err := SiteFactor(GroundTypeI, Quantity(9), 0.3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestValidateTables(t *testing.T) {
	require.NoError(t, ValidateTables())
}

func TestTable_ReturnsCopy(t *testing.T) {
	table, err := Table(QuantitySs, GroundTypeII)
	require.NoError(t, err)
	table.Factors[0] = 99

	fa, err := Fa(GroundTypeII, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 1.6, fa)
}

func TestSiteConditions(t *testing.T) {
	t.Run("invalid ground type rejected at construction", func(t *testing.T) {
		_, err := NewSiteConditions(GroundType(7))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidGroundType)
	})

	t.Run("missing input", func(t *testing.T) {
		site, err := NewSiteConditions(GroundTypeII)
		require.NoError(t, err)

		_, err = site.Factor(QuantitySs)
		require.Error(t, err)

		var missing *MissingInputError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "ss", missing.Input)
	})

	t.Run("supplied inputs", func(t *testing.T) {
		site, err := NewSiteConditions(GroundTypeIII)
		require.NoError(t, err)
		site.Set(QuantityPGA, 0.6)
		site.Set(QuantityS1, 0.4)

		fv, err := site.Factor(QuantityS1)
		require.NoError(t, err)
		assert.Equal(t, 2.4, fv)

		coeffs, err := site.Coefficients()
		require.NoError(t, err)
		require.NotNil(t, coeffs.Fpga)
		require.NotNil(t, coeffs.Fv)
		assert.Nil(t, coeffs.Fa)
		assert.InDelta(t, 0.78333333, *coeffs.Fpga, 1e-6)
		assert.Equal(t, 2.4, *coeffs.Fv)
	})

	t.Run("no inputs", func(t *testing.T) {
		site, err := NewSiteConditions(GroundTypeI)
		require.NoError(t, err)
		_, err = site.Coefficients()
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("zero value struct", func(t *testing.T) {
		var site SiteConditions
		site.Set(QuantityPGA, 0.1)
		_, err := site.Coefficients()
		assert.ErrorIs(t, err, ErrInvalidGroundType)
	})
}
