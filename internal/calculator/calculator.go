// Package calculator wraps the pure domain functions with the logging,
// metrics, and limits shared by the HTTP API and the Kafka pipeline.
package calculator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/seismic-site-response/internal/config"
	"github.com/couchcryptid/seismic-site-response/internal/domain"
	"github.com/couchcryptid/seismic-site-response/internal/observability"
)

// Calculator is safe for concurrent use; it holds no mutable state of its own.
type Calculator struct {
	logger            *slog.Logger
	metrics           *observability.Metrics
	maxLayers         int
	spectrumPoints    int
	spectrumMaxPeriod float64
}

// New creates a Calculator using the limits from cfg.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Calculator {
	return &Calculator{
		logger:            logger,
		metrics:           metrics,
		maxLayers:         cfg.MaxLayers,
		spectrumPoints:    cfg.SpectrumPoints,
		spectrumMaxPeriod: cfg.SpectrumMaxPeriod,
	}
}

// CheckReadiness reports whether every built-in reference table is well formed.
func (c *Calculator) CheckReadiness(_ context.Context) error {
	return domain.ValidateTables()
}

// SiteFactor looks up a single factor.
func (c *Calculator) SiteFactor(g domain.GroundType, q domain.Quantity, value float64) (float64, error) {
	f, err := domain.SiteFactor(g, q, value)
	if err != nil {
		c.lookupFailed(err, "quantity", q.String(), "ground_type", g.String(), "value", value)
		return 0, err
	}
	c.metrics.Lookups.WithLabelValues(q.String(), g.String()).Inc()
	c.logger.Debug("site factor", "quantity", q.String(), "ground_type", g.String(), "value", value, "factor", f)
	return f, nil
}

// SiteFactors derives every factor whose input is present in site.
func (c *Calculator) SiteFactors(site domain.SiteConditions) (domain.SiteCoefficients, error) {
	coeffs, err := site.Coefficients()
	if err != nil {
		c.lookupFailed(err, "ground_type", site.GroundType.String())
		return domain.SiteCoefficients{}, err
	}
	for _, q := range domain.Quantities {
		if _, err := site.Input(q); err == nil {
			c.metrics.Lookups.WithLabelValues(q.String(), site.GroundType.String()).Inc()
		}
	}
	return coeffs, nil
}

// Classify runs the ground classifier over layers, enforcing the layer limit.
func (c *Calculator) Classify(layers []domain.Layer) ([]domain.ClassificationRow, error) {
	if err := c.checkLayerLimit(layers); err != nil {
		c.classifyFailed(err, "layers", len(layers))
		return nil, err
	}
	rows, err := domain.ClassifyGroundType(layers)
	if err != nil {
		c.classifyFailed(err, "layers", len(layers))
		return nil, err
	}
	if len(rows) > 0 {
		final := rows[len(rows)-1]
		c.classified(len(rows), final.GroundType, final.TG, "")
	}
	return rows, nil
}

// ClassifyProfile classifies a pipeline request and derives any site factors it carries.
func (c *Calculator) ClassifyProfile(req domain.ProfileRequest) (domain.ClassifiedProfile, error) {
	if err := c.checkLayerLimit(req.Layers); err != nil {
		c.classifyFailed(err, "profile_id", req.ID, "layers", len(req.Layers))
		return domain.ClassifiedProfile{}, err
	}
	out, err := domain.ClassifyProfile(req)
	if err != nil {
		c.classifyFailed(err, "profile_id", req.ID, "layers", len(req.Layers))
		return domain.ClassifiedProfile{}, err
	}
	c.classified(len(out.Rows), out.GroundType, out.TG, out.ID)
	return out, nil
}

// Spectrum samples the design spectrum. Zero points or maxPeriod select the configured defaults.
func (c *Calculator) Spectrum(p domain.SpectrumParams, points int, maxPeriod float64) (domain.Spectrum, error) {
	if points == 0 {
		points = c.spectrumPoints
	}
	if maxPeriod == 0 {
		maxPeriod = c.spectrumMaxPeriod
	}

	periods, err := domain.SpectrumPeriods(points, maxPeriod)
	if err != nil {
		c.lookupFailed(err, "points", points, "max_period", maxPeriod)
		return domain.Spectrum{}, err
	}
	spectrum, err := domain.DesignSpectrum(p, periods)
	if err != nil {
		c.lookupFailed(err, "ground_type", p.GroundType.String(), "pga", p.PGA, "ss", p.Ss, "s1", p.S1)
		return domain.Spectrum{}, err
	}
	c.metrics.Spectra.Inc()
	c.logger.Debug("design spectrum", "ground_type", p.GroundType.String(), "sds", spectrum.SDS, "sd1", spectrum.SD1, "points", points)
	return spectrum, nil
}

func (c *Calculator) checkLayerLimit(layers []domain.Layer) error {
	if c.maxLayers > 0 && len(layers) > c.maxLayers {
		return &domain.InvalidLayerError{
			Index:  c.maxLayers,
			Reason: fmt.Sprintf("profile has %d layers, limit is %d", len(layers), c.maxLayers),
		}
	}
	return nil
}

func (c *Calculator) classified(layers int, g domain.GroundType, tg float64, id string) {
	c.metrics.Classifications.WithLabelValues(g.String()).Inc()
	c.metrics.ProfileLayers.Observe(float64(layers))
	c.logger.Debug("classified profile", "profile_id", id, "layers", layers, "ground_type", g.String(), "tg", tg)
}

func (c *Calculator) lookupFailed(err error, args ...any) {
	kind := domain.ErrorKind(err)
	c.metrics.LookupErrors.WithLabelValues(kind).Inc()
	c.logger.Warn("site factor lookup rejected", append([]any{"error", err, "kind", kind}, args...)...)
}

func (c *Calculator) classifyFailed(err error, args ...any) {
	kind := domain.ErrorKind(err)
	c.metrics.ClassifyErrors.WithLabelValues(kind).Inc()
	c.logger.Warn("classification rejected", append([]any{"error", err, "kind", kind}, args...)...)
}
