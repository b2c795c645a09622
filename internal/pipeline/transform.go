package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/seismic-site-response/internal/domain"
)

// ProfileClassifier classifies a parsed profile request.
// It is satisfied by *calculator.Calculator.
type ProfileClassifier interface {
	ClassifyProfile(req domain.ProfileRequest) (domain.ClassifiedProfile, error)
}

// ProfileTransformer implements Transformer: parse, classify, serialize.
type ProfileTransformer struct {
	classifier ProfileClassifier
	logger     *slog.Logger
}

// NewTransformer creates a ProfileTransformer backed by classifier.
func NewTransformer(classifier ProfileClassifier, logger *slog.Logger) *ProfileTransformer {
	return &ProfileTransformer{
		classifier: classifier,
		logger:     logger,
	}
}

func (t *ProfileTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	req, err := domain.ParseProfileRequest(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	profile, err := t.classifier.ClassifyProfile(req)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	out, err := domain.SerializeClassifiedProfile(profile)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	t.logger.Debug("profile classified", "profile_id", profile.ID, "ground_type", profile.GroundType.String(), "layers", len(profile.Rows))
	return out, nil
}
