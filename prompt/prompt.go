// Package prompt renders validated advisory requests into the fixed
// natural-language templates sent to the inference model.
package prompt

import (
	"github.com/greencure/greencure-cli/advisory"
)

// Build validates req against the required fields of kind and renders the
// kind's template. Deterministic: identical inputs produce identical text.
// Returns *advisory.ValidationError when a required field is missing or
// outside its documented domain.
func Build(kind advisory.Kind, req advisory.Request) (string, error) {
	if err := req.Validate(kind); err != nil {
		return "", err
	}

	switch kind {
	case advisory.KindCropRecommendation:
		return GetCropRecommendationPrompt(req), nil
	case advisory.KindDiseaseDiagnosis:
		return GetDiseaseDiagnosisPrompt(req), nil
	case advisory.KindSoilAnalysis:
		return GetSoilAnalysisPrompt(req), nil
	case advisory.KindWeatherAdvisory:
		return GetWeatherAdvisoryPrompt(req), nil
	case advisory.KindMarketAnalysis:
		return GetMarketAnalysisPrompt(req), nil
	}

	// Validate already rejected unknown kinds
	return "", &advisory.ValidationError{Field: "kind", Message: "unknown advisory kind"}
}
