// Package domain computes seismic site-response coefficients and classifies
// ground type from layered soil profiles.
//
// # Site Factors
//
// Three scalar inputs each map to a site factor through a table keyed by
// ground type:
//
//	PGA (peak ground acceleration, g)          -> Fpga
//	Ss  (0.2 s spectral acceleration, g)       -> Fa
//	S1  (1.0 s spectral acceleration, g)       -> Fv
//
// Lookup is piecewise-linear between breakpoints and clamped at both ends:
//
//	value <= first breakpoint  -> first factor
//	value >= last breakpoint   -> last factor
//	b[i] <= value < b[i+1]     -> f[i] + (value-b[i])*(f[i+1]-f[i])/(b[i+1]-b[i])
//
// Intervals are half-open, so a value sitting exactly on an interior
// breakpoint returns that breakpoint's factor with no interpolation. See
// [Interpolate] and [SiteFactor].
//
// # Ground Classification
//
// Layers are ordered shallowest first. Each layer adds its travel time H/Vs
// to a running sum and the characteristic period at that depth is
//
//	TG = 4 * sum(H/Vs)
//
// classified as
//
//	TG < 0.2          Type I
//	0.2 <= TG < 0.6   Type II
//	TG >= 0.6         Type III
//
// Every depth gets its own row, so a profile typically moves from Type I
// towards Type III as soft layers accumulate. A layer with Vs = 0 has an
// undefined ratio (JSON null) and leaves the sum unchanged. Negative
// thickness or velocity is rejected with [InvalidLayerError]. See
// [ClassifyGroundType].
//
// # Design Spectrum
//
// [DesignSpectrum] combines the three factors into the usual three-segment
// acceleration curve (rising ramp to T0, plateau at SDS up to Ts, then
// SD1/T). The package returns the sampled arrays only; rendering is left to
// callers.
//
// All functions are pure apart from the injectable clock used to stamp
// [ClassifiedProfile.ProcessedAt], and are safe for concurrent use.
package domain
