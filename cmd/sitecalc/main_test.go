package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassify_DefaultDatasetTable(t *testing.T) {
	out, err := execute(t, "classify")
	require.NoError(t, err)

	assert.Contains(t, out, "Type I")
	assert.Contains(t, out, "Type II")
	assert.Contains(t, out, "Type III")
	assert.Contains(t, out, "0.753388")
	assert.NotContains(t, out, "0.7533884")
}

func TestClassify_TablePrecision(t *testing.T) {
	out, err := execute(t, "classify", "--layer", "4:281.25", "--layer", "2:0")
	require.NoError(t, err)

	assert.Contains(t, out, "281.250000")
	assert.Contains(t, out, "0.014222222222")
	assert.NotContains(t, out, "0.0142222222222")
	assert.Contains(t, out, "0.056889")
	assert.Contains(t, out, "-")
}

func TestClassify_LayerFlagsJSON(t *testing.T) {
	out, err := execute(t, "classify", "-o", "json", "--layer", "4:281.25", "--layer", "0:0")
	require.NoError(t, err)

	var rows []domain.ClassificationRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.InDelta(t, 0.0568889, rows[0].TG, 1e-6)
	assert.False(t, rows[1].Ratio.Defined)
	assert.Equal(t, domain.GroundTypeI, rows[1].GroundType)
}

func TestClassify_BadLayer(t *testing.T) {
	_, err := execute(t, "classify", "--layer", "4-281")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "THICKNESS:VS")

	_, err = execute(t, "classify", "--layer=-4:281")
	assert.ErrorIs(t, err, domain.ErrInvalidLayer)
}

func TestFactor_JSON(t *testing.T) {
	out, err := execute(t, "factor", "-o", "json", "-g", "III", "--pga", "0.6", "--s1", "0.4")
	require.NoError(t, err)

	var res factorResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.GroundTypeIII, res.GroundType)
	require.NotNil(t, res.Coefficients.Fpga)
	require.NotNil(t, res.Coefficients.Fv)
	assert.Nil(t, res.Coefficients.Fa)
	assert.InDelta(t, 0.783333, *res.Coefficients.Fpga, 1e-6)
	assert.InDelta(t, 2.4, *res.Coefficients.Fv, 1e-9)
}

func TestFactor_Table(t *testing.T) {
	out, err := execute(t, "factor", "-g", "Type II", "--pga", "0.15")
	require.NoError(t, err)

	assert.Contains(t, out, "Fpga")
	assert.Contains(t, out, "1.5000")
}

func TestFactor_Errors(t *testing.T) {
	_, err := execute(t, "factor", "-g", "IV", "--pga", "0.1")
	assert.ErrorIs(t, err, domain.ErrInvalidGroundType)

	_, err = execute(t, "factor", "-g", "II")
	assert.ErrorIs(t, err, domain.ErrMissingInput)

	_, err = execute(t, "factor", "--pga", "0.1")
	assert.Error(t, err, "ground type flag is required")
}

func TestSpectrum_JSON(t *testing.T) {
	out, err := execute(t, "spectrum", "-o", "json", "-g", "I", "--pga", "0.2", "--ss", "0.5", "--s1", "0.2", "--points", "5")
	require.NoError(t, err)

	var spectrum domain.Spectrum
	require.NoError(t, json.Unmarshal([]byte(out), &spectrum))
	assert.InDelta(t, 0.6, spectrum.SDS, 1e-9)
	assert.InDelta(t, 0.32, spectrum.SD1, 1e-9)
	require.Len(t, spectrum.Accelerations, 5)
	assert.InDelta(t, 0.24, spectrum.Accelerations[0], 1e-9)
}

func TestSpectrum_InvalidParams(t *testing.T) {
	_, err := execute(t, "spectrum", "-g", "I", "--pga", "0.2", "--s1", "0.2")
	assert.ErrorIs(t, err, domain.ErrInvalidSpectrum)
}

func TestTables(t *testing.T) {
	out, err := execute(t, "tables", "-o", "json", "fv")
	require.NoError(t, err)

	var dumps []tableDump
	require.NoError(t, json.Unmarshal([]byte(out), &dumps))
	require.Len(t, dumps, 1)
	assert.Equal(t, "Fv", dumps[0].Factor)
	assert.Equal(t, []float64{0.10, 0.20, 0.30, 0.40, 0.50, 0.80}, dumps[0].Breakpoints)
	assert.Equal(t, []float64{3.5, 3.2, 2.8, 2.4, 2.4, 2.0}, dumps[0].Factors["III"])
}

func TestTables_AllRendered(t *testing.T) {
	out, err := execute(t, "tables")
	require.NoError(t, err)

	assert.Contains(t, out, "Fpga by pga")
	assert.Contains(t, out, "Fa by ss")
	assert.Contains(t, out, "Fv by s1")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "tables", "-o", "yaml")
	assert.Error(t, err)
}
