package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// SiteInputs are the optional scalar accelerations supplied with a profile.
// Any supplied input is converted to its site factor using the profile's
// final ground type.
type SiteInputs struct {
	PGA *float64 `json:"pga,omitempty"`
	Ss  *float64 `json:"ss,omitempty"`
	S1  *float64 `json:"s1,omitempty"`
}

// ProfileRequest is the JSON payload on the source topic: an ordered borehole
// profile, shallowest layer first.
type ProfileRequest struct {
	ID     string      `json:"id"`
	Layers []Layer     `json:"layers"`
	Site   *SiteInputs `json:"site,omitempty"`
}

// ClassifiedProfile is the result written to the sink topic.
type ClassifiedProfile struct {
	ID           string              `json:"id"`
	Rows         []ClassificationRow `json:"rows"`
	GroundType   GroundType          `json:"ground_type"`
	TG           float64             `json:"tg"`
	Coefficients *SiteCoefficients   `json:"coefficients,omitempty"`
	ProcessedAt  time.Time           `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
