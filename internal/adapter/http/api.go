package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const maxBodyBytes = 1 << 20

// Calculator is the subset of calculator.Calculator the API depends on.
type Calculator interface {
	SiteFactor(g domain.GroundType, q domain.Quantity, value float64) (float64, error)
	SiteFactors(site domain.SiteConditions) (domain.SiteCoefficients, error)
	Classify(layers []domain.Layer) ([]domain.ClassificationRow, error)
	Spectrum(p domain.SpectrumParams, points int, maxPeriod float64) (domain.Spectrum, error)
}

type siteFactorResponse struct {
	GroundType domain.GroundType `json:"ground_type"`
	Quantity   string            `json:"quantity"`
	FactorName string            `json:"factor_name"`
	Value      float64           `json:"value"`
	Factor     float64           `json:"factor"`
}

type siteFactorsResponse struct {
	GroundType   domain.GroundType       `json:"ground_type"`
	Coefficients domain.SiteCoefficients `json:"coefficients"`
}

type classifyRequest struct {
	Layers []domain.Layer `json:"layers"`
}

type classifyResponse struct {
	GroundType domain.GroundType          `json:"ground_type"`
	TG         float64                    `json:"tg"`
	Rows       []domain.ClassificationRow `json:"rows"`
}

type spectrumRequest struct {
	domain.SpectrumParams
	Points    int     `json:"points,omitempty"`
	MaxPeriod float64 `json:"max_period,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// badRequestError marks malformed input that never reached the domain layer.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func (s *Server) handleSiteFactors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	g, err := domain.ParseGroundType(q.Get("ground_type"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	site := domain.SiteConditions{GroundType: g}
	for _, quantity := range domain.Quantities {
		raw := q.Get(quantity.String())
		if raw == "" {
			continue
		}
		v, err := parseFloatParam(quantity.String(), raw)
		if err != nil {
			s.writeError(w, err)
			return
		}
		site.Set(quantity, v)
	}

	coeffs, err := s.calc.SiteFactors(site)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, siteFactorsResponse{GroundType: g, Coefficients: coeffs})
}

func (s *Server) handleSiteFactor(w http.ResponseWriter, r *http.Request) {
	quantity, ok := domain.ParseQuantity(r.PathValue("quantity"))
	if !ok {
		sharedobs.WriteJSON(w, http.StatusNotFound, errorResponse{
			Error: fmt.Sprintf("unknown quantity %q", r.PathValue("quantity")),
			Kind:  "not_found",
		})
		return
	}

	q := r.URL.Query()
	g, err := domain.ParseGroundType(q.Get("ground_type"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	raw := q.Get("value")
	if raw == "" {
		s.writeError(w, &domain.MissingInputError{Input: quantity.String()})
		return
	}
	v, err := parseFloatParam("value", raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	f, err := s.calc.SiteFactor(g, quantity, v)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, siteFactorResponse{
		GroundType: g,
		Quantity:   quantity.String(),
		FactorName: quantity.FactorName(),
		Value:      v,
		Factor:     f,
	})
}

// handleClassify classifies the posted profile; an empty body or layer list
// classifies the built-in reference borehole.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	layers := req.Layers
	if len(layers) == 0 {
		layers = domain.DefaultLayers()
	}

	rows, err := s.calc.Classify(layers)
	if err != nil {
		s.writeError(w, err)
		return
	}
	final := rows[len(rows)-1]
	sharedobs.WriteJSON(w, http.StatusOK, classifyResponse{GroundType: final.GroundType, TG: final.TG, Rows: rows})
}

func (s *Server) handleSpectrum(w http.ResponseWriter, r *http.Request) {
	var req spectrumRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	spectrum, err := s.calc.Spectrum(req.SpectrumParams, req.Points, req.MaxPeriod)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, spectrum)
}

// decodeBody decodes a JSON request body into v. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if domain.ErrorKind(err) != "internal" {
			return err
		}
		return &badRequestError{msg: "decode request body: " + err.Error()}
	}
	return nil
}

func parseFloatParam(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &badRequestError{msg: fmt.Sprintf("%s: %q is not a number", name, raw)}
	}
	return v, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var bad *badRequestError
	if errors.As(err, &bad) {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	kind := domain.ErrorKind(err)
	if kind == "internal" {
		s.logger.Error("request failed", "error", err)
		sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: kind})
		return
	}
	sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kind})
}
