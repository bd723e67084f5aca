package advisory

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names shared across advisory kinds
const (
	FieldLocation      = "location"
	FieldSoilType      = "soil_type"
	FieldSeason        = "season"
	FieldFarmSize      = "farm_size"
	FieldCrop          = "crop"
	FieldSymptoms      = "symptoms"
	FieldRegion        = "region"
	FieldPH            = "ph"
	FieldOrganicMatter = "organic_matter"
	FieldDrainage      = "drainage"
	FieldWeather       = "current_weather"
	FieldCropStage     = "crop_stage"
	FieldQuantity      = "quantity"
)

// Documented value domains for constrained fields
var (
	OrganicMatterLevels = []string{"low", "medium", "high"}
	DrainageQualities   = []string{"poor", "moderate", "good"}
)

// Request holds the named input fields for one advisory.
type Request map[string]string

// ValidationError reports a missing or out-of-domain request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Message)
}

// fieldSpec describes one required field of an advisory kind.
type fieldSpec struct {
	name  string
	check func(value string) string // non-empty return is the failure message
}

func anyValue(string) string { return "" }

func oneOf(allowed []string) func(string) string {
	return func(value string) string {
		for _, v := range allowed {
			if strings.EqualFold(value, v) {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
	}
}

func phRange(value string) string {
	ph, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "must be a number"
	}
	if ph < 1 || ph > 14 {
		return "must be between 1 and 14"
	}
	return ""
}

var requiredFields = map[Kind][]fieldSpec{
	KindCropRecommendation: {
		{FieldLocation, anyValue},
		{FieldSoilType, anyValue},
		{FieldSeason, anyValue},
		{FieldFarmSize, anyValue},
	},
	KindDiseaseDiagnosis: {
		{FieldCrop, anyValue},
		{FieldSymptoms, anyValue},
		{FieldRegion, anyValue},
	},
	KindSoilAnalysis: {
		{FieldPH, phRange},
		{FieldOrganicMatter, oneOf(OrganicMatterLevels)},
		{FieldDrainage, oneOf(DrainageQualities)},
		{FieldRegion, anyValue},
	},
	KindWeatherAdvisory: {
		{FieldLocation, anyValue},
		{FieldWeather, anyValue},
		{FieldCropStage, anyValue},
	},
	KindMarketAnalysis: {
		{FieldCrop, anyValue},
		{FieldLocation, anyValue},
		{FieldQuantity, anyValue},
	},
}

// RequiredFields returns the field names a request of kind k must carry.
func RequiredFields(k Kind) []string {
	specs := requiredFields[k]
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.name)
	}
	return names
}

// Validate checks that every required field for kind k is present and
// within its documented domain. Returns a *ValidationError on the first
// failing field.
func (r Request) Validate(k Kind) error {
	if !k.Valid() {
		return &ValidationError{Field: "kind", Message: fmt.Sprintf("unknown advisory kind %q", string(k))}
	}
	for _, spec := range requiredFields[k] {
		value, ok := r[spec.name]
		if !ok || strings.TrimSpace(value) == "" {
			return &ValidationError{Field: spec.name, Message: "required field is missing"}
		}
		if msg := spec.check(value); msg != "" {
			return &ValidationError{Field: spec.name, Message: msg}
		}
	}
	return nil
}

// Clone returns an independent copy of the request so logged entries
// stay immutable after append.
func (r Request) Clone() Request {
	out := make(Request, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
