// Package roadmap generates the fixed six-stage education roadmap for a
// career.
package roadmap

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/astroverse/internal/domain"
)

// ErrUnknownStage is returned by callers that turn an absent stage lookup
// into an error.
var ErrUnknownStage = errors.New("unknown roadmap stage")

// Default returns the content shared by careers without their own text.
func Default() domain.StageContent {
	return defaultContent
}

// ContentFor returns the stage text for a career. It is total: ids without
// an override, including ids the catalog does not know, get Default().
func ContentFor(id domain.CareerID) domain.StageContent {
	c, _ := override(id)
	return c
}

// HasOverride reports whether the career has its own stage text.
func HasOverride(id domain.CareerID) bool {
	_, ok := override(id)
	return ok
}

// Generate returns the six stages for a career, numbered 1 through 6 in
// fixed order. It never fails.
func Generate(id domain.CareerID) []domain.RoadmapStage {
	content := ContentFor(id)
	stages := make([]domain.RoadmapStage, 0, domain.StageCount)
	for _, s := range domain.Stages {
		stages = append(stages, domain.RoadmapStage{
			Ordinal: s,
			Title:   s.Title(),
			Content: content.Text(s),
		})
	}
	return stages
}

// StageFor returns a single stage of a career's roadmap. The second result
// is false when ordinal is outside 1..6.
func StageFor(id domain.CareerID, ordinal domain.Stage) (domain.RoadmapStage, bool) {
	if !ordinal.Valid() {
		return domain.RoadmapStage{}, false
	}
	return domain.RoadmapStage{
		Ordinal: ordinal,
		Title:   ordinal.Title(),
		Content: ContentFor(id).Text(ordinal),
	}, true
}

// LookupStage is StageFor for callers that want an error on absence.
func LookupStage(id domain.CareerID, ordinal domain.Stage) (domain.RoadmapStage, error) {
	stage, ok := StageFor(id, ordinal)
	if !ok {
		return domain.RoadmapStage{}, fmt.Errorf("stage %d (want 1-%d): %w", ordinal, domain.StageCount, ErrUnknownStage)
	}
	return stage, nil
}
