package calculator_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/seismic-site-response/internal/calculator"
	"github.com/couchcryptid/seismic-site-response/internal/config"
	"github.com/couchcryptid/seismic-site-response/internal/domain"
	"github.com/couchcryptid/seismic-site-response/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T, maxLayers int) (*calculator.Calculator, *observability.Metrics) {
	t.Helper()
	cfg := &config.Config{MaxLayers: maxLayers, SpectrumPoints: 11, SpectrumMaxPeriod: 2}
	metrics := observability.NewMetricsForTesting()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return calculator.New(cfg, logger, metrics), metrics
}

func TestCalculator_CheckReadiness(t *testing.T) {
	calc, _ := newTestCalculator(t, 10)
	assert.NoError(t, calc.CheckReadiness(context.Background()))
}

func TestCalculator_SiteFactor(t *testing.T) {
	calc, metrics := newTestCalculator(t, 10)

	f, err := calc.SiteFactor(domain.GroundTypeIII, domain.QuantityS1, 0.4)
	require.NoError(t, err)
	assert.Equal(t, 2.4, f)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.Lookups.WithLabelValues("s1", "III")), 0)

	_, err = calc.SiteFactor(domain.GroundType(0), domain.QuantityS1, 0.4)
	require.ErrorIs(t, err, domain.ErrInvalidGroundType)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.LookupErrors.WithLabelValues("invalid_ground_type")), 0)
}

func TestCalculator_SiteFactors(t *testing.T) {
	calc, metrics := newTestCalculator(t, 10)

	ss := 1.1
	coeffs, err := calc.SiteFactors(domain.SiteConditions{GroundType: domain.GroundTypeIII, Ss: &ss})
	require.NoError(t, err)
	require.NotNil(t, coeffs.Fa)
	assert.InDelta(t, 0.86, *coeffs.Fa, 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.Lookups.WithLabelValues("ss", "III")), 0)

	_, err = calc.SiteFactors(domain.SiteConditions{GroundType: domain.GroundTypeI})
	require.ErrorIs(t, err, domain.ErrMissingInput)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.LookupErrors.WithLabelValues("missing_input")), 0)
}

func TestCalculator_Classify(t *testing.T) {
	calc, metrics := newTestCalculator(t, 20)

	rows, err := calc.Classify(domain.DefaultLayers())
	require.NoError(t, err)
	require.Len(t, rows, 12)
	assert.Equal(t, domain.GroundTypeIII, rows[11].GroundType)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.Classifications.WithLabelValues("III")), 0)

	rows, err = calc.Classify(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCalculator_Classify_LayerLimit(t *testing.T) {
	calc, metrics := newTestCalculator(t, 3)

	_, err := calc.Classify(domain.DefaultLayers())
	require.ErrorIs(t, err, domain.ErrInvalidLayer)
	assert.Contains(t, err.Error(), "limit is 3")
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.ClassifyErrors.WithLabelValues("invalid_layer")), 0)
}

func TestCalculator_ClassifyProfile(t *testing.T) {
	calc, _ := newTestCalculator(t, 20)

	out, err := calc.ClassifyProfile(domain.ProfileRequest{ID: "bh-7", Layers: domain.DefaultLayers()[:2]})
	require.NoError(t, err)
	assert.Equal(t, "bh-7", out.ID)
	assert.Equal(t, domain.GroundTypeI, out.GroundType)

	_, err = calc.ClassifyProfile(domain.ProfileRequest{ID: "empty"})
	assert.ErrorIs(t, err, domain.ErrInvalidLayer)
}

func TestCalculator_Spectrum(t *testing.T) {
	calc, metrics := newTestCalculator(t, 20)

	spectrum, err := calc.Spectrum(domain.SpectrumParams{GroundType: domain.GroundTypeII, PGA: 0.3, Ss: 0.75, S1: 0.3}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, spectrum.Periods, 11)
	assert.InDelta(t, 2.0, spectrum.Periods[10], 1e-12)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.Spectra), 0)

	spectrum, err = calc.Spectrum(domain.SpectrumParams{GroundType: domain.GroundTypeII, PGA: 0.3, Ss: 0.75, S1: 0.3}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, spectrum.Periods)

	_, err = calc.Spectrum(domain.SpectrumParams{GroundType: domain.GroundTypeII}, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidSpectrum)
}
