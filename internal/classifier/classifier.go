// Package classifier identifies the natural language of submitted content.
// Detection is best-effort: any text the detector cannot place (empty,
// symbols only, too ambiguous) yields the "unknown" sentinel instead of an
// error, because a failed classification must never block ingestion.
package classifier

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/axialhq/axial-data-api/internal/models"
)

// Detector is the classification contract handlers depend on. Keeping it an
// interface lets tests substitute a canned detector and leaves room for a
// different backend (an external model, say) without touching handler code.
type Detector interface {
	// Classify returns a lowercase two-letter ISO 639-1 code for the text's
	// most likely language, or models.LanguageUnknown when detection fails.
	Classify(text string) string
}

// LinguaDetector is the lingua-go backed implementation of Detector.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector covering every spoken language lingua
// ships models for. Construction loads those models and is expensive, so the
// server builds one instance at startup and shares it across requests (the
// underlying detector is safe for concurrent use).
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build(),
	}
}

// Classify implements Detector.
func (d *LinguaDetector) Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return models.LanguageUnknown
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		// lingua found no letters to work with, or nothing scored above
		// its confidence floor.
		return models.LanguageUnknown
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
