package advisory

import "fmt"

// Kind identifies one of the supported advisory types.
type Kind string

// Available advisory kinds
const (
	KindCropRecommendation Kind = "crop-recommendation"
	KindDiseaseDiagnosis   Kind = "disease-diagnosis"
	KindSoilAnalysis       Kind = "soil-analysis"
	KindWeatherAdvisory    Kind = "weather-advisory"
	KindMarketAnalysis     Kind = "market-analysis"
)

// Kinds lists every advisory kind that can be sent to the model.
// Reports are assembled locally from past advisories and are not a prompt kind.
var Kinds = []Kind{
	KindCropRecommendation,
	KindDiseaseDiagnosis,
	KindSoilAnalysis,
	KindWeatherAdvisory,
	KindMarketAnalysis,
}

// Valid reports whether k is a known advisory kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCropRecommendation, KindDiseaseDiagnosis, KindSoilAnalysis,
		KindWeatherAdvisory, KindMarketAnalysis:
		return true
	}
	return false
}

// Title returns the human-readable name used in report section headers.
func (k Kind) Title() string {
	switch k {
	case KindCropRecommendation:
		return "Crop Recommendation"
	case KindDiseaseDiagnosis:
		return "Disease Diagnosis"
	case KindSoilAnalysis:
		return "Soil Analysis"
	case KindWeatherAdvisory:
		return "Weather Advisory"
	case KindMarketAnalysis:
		return "Market Analysis"
	}
	return string(k)
}

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown advisory kind: %q", s)
	}
	return k, nil
}
