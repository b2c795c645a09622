package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroundType(t *testing.T) {
	tests := []struct {
		input    string
		expected GroundType
	}{
		{"I", GroundTypeI},
		{"ii", GroundTypeII},
		{" III ", GroundTypeIII},
		{"Type I", GroundTypeI},
		{"type ii", GroundTypeII},
		{"TYPE III", GroundTypeIII},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGroundType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, bad := range []string{"", "IV", "1", "Type", "soft"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseGroundType(bad)
			require.Error(t, err)

			var gtErr *InvalidGroundTypeError
			require.ErrorAs(t, err, &gtErr)
			assert.Equal(t, bad, gtErr.Value)
		})
	}
}

func TestGroundType_Strings(t *testing.T) {
	assert.Equal(t, "II", GroundTypeII.String())
	assert.Equal(t, "Type III", GroundTypeIII.Label())
	assert.Equal(t, "GroundType(0)", GroundType(0).String())
	assert.Equal(t, "unknown", GroundType(5).Label())
	assert.False(t, GroundType(0).Valid())
}

func TestGroundType_JSON(t *testing.T) {
	type wrapper struct {
		G GroundType `json:"g"`
	}

	data, err := json.Marshal(wrapper{G: GroundTypeII})
	require.NoError(t, err)
	assert.JSONEq(t, `{"g":"II"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"g":"Type III"}`), &w))
	assert.Equal(t, GroundTypeIII, w.G)

	err = json.Unmarshal([]byte(`{"g":"IV"}`), &w)
	assert.ErrorIs(t, err, ErrInvalidGroundType)

	_, err = json.Marshal(wrapper{})
	assert.Error(t, err)
}

func TestParseQuantity(t *testing.T) {
	for input, expected := range map[string]Quantity{
		"pga": QuantityPGA, "FPGA": QuantityPGA,
		"ss": QuantitySs, "Fa": QuantitySs,
		"s1": QuantityS1, "fv": QuantityS1,
	} {
		got, ok := ParseQuantity(input)
		assert.True(t, ok, input)
		assert.Equal(t, expected, got, input)
	}

	_, ok := ParseQuantity("sd1")
	assert.False(t, ok)
	assert.Equal(t, "Fa", QuantitySs.FactorName())
	assert.Equal(t, "s1", QuantityS1.String())
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "invalid_ground_type", ErrorKind(&InvalidGroundTypeError{Value: "x"}))
	assert.Equal(t, "missing_input", ErrorKind(&MissingInputError{Input: "pga"}))
	assert.Equal(t, "invalid_table", ErrorKind(&InvalidTableError{Reason: "x"}))
	assert.Equal(t, "invalid_layer", ErrorKind(&InvalidLayerError{Reason: "x"}))
	assert.Equal(t, "invalid_spectrum", ErrorKind(&InvalidSpectrumError{Reason: "x"}))
	assert.Equal(t, "internal", ErrorKind(assert.AnError))
}
