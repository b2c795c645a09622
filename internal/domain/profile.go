package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseProfileRequest deserializes a RawEvent's value into a ProfileRequest.
// A request without an ID takes the message key, then a deterministic hash of
// its layers.
func ParseProfileRequest(raw RawEvent) (ProfileRequest, error) {
	var req ProfileRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return ProfileRequest{}, fmt.Errorf("parse profile request: %w", err)
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		req.ID = strings.TrimSpace(string(raw.Key))
	}
	if req.ID == "" {
		req.ID = generateID(req.Layers)
	}
	return req, nil
}

// ClassifyProfile classifies every layer of the request and, when site inputs
// are present, derives their factors from the deepest row's ground type.
func ClassifyProfile(req ProfileRequest) (ClassifiedProfile, error) {
	if len(req.Layers) == 0 {
		return ClassifiedProfile{}, &InvalidLayerError{Index: -1, Reason: "profile has no layers"}
	}

	rows, err := ClassifyGroundType(req.Layers)
	if err != nil {
		return ClassifiedProfile{}, err
	}
	final := rows[len(rows)-1]

	out := ClassifiedProfile{
		ID:          req.ID,
		Rows:        rows,
		GroundType:  final.GroundType,
		TG:          final.TG,
		ProcessedAt: processedAt(),
	}

	if req.Site != nil && (req.Site.PGA != nil || req.Site.Ss != nil || req.Site.S1 != nil) {
		site := SiteConditions{GroundType: final.GroundType, PGA: req.Site.PGA, Ss: req.Site.Ss, S1: req.Site.S1}
		coeffs, err := site.Coefficients()
		if err != nil {
			return ClassifiedProfile{}, err
		}
		out.Coefficients = &coeffs
	}
	return out, nil
}

// SerializeClassifiedProfile marshals a classified profile into an OutputEvent
// keyed by the profile ID.
func SerializeClassifiedProfile(p ClassifiedProfile) (OutputEvent, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize classified profile: %w", err)
	}
	return OutputEvent{
		Key:   []byte(p.ID),
		Value: data,
		Headers: map[string]string{
			"ground_type":  p.GroundType.String(),
			"processed_at": p.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}

// generateID hashes the layer list so replays of the same profile share an ID.
func generateID(layers []Layer) string {
	var b strings.Builder
	for i, l := range layers {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.FormatFloat(l.Thickness, 'g', -1, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(l.ShearVelocity, 'g', -1, 64))
	}
	hash := sha256.Sum256([]byte(b.String()))
	return "profile-" + hex.EncodeToString(hash[:8])
}
