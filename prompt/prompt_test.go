package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/greencure/greencure-cli/advisory"
	"github.com/greencure/greencure-cli/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequests() map[advisory.Kind]advisory.Request {
	return map[advisory.Kind]advisory.Request{
		advisory.KindCropRecommendation: {
			advisory.FieldLocation: "Nashik",
			advisory.FieldSoilType: "black cotton",
			advisory.FieldSeason:   "kharif",
			advisory.FieldFarmSize: "2 acres",
		},
		advisory.KindDiseaseDiagnosis: {
			advisory.FieldCrop:     "tomato",
			advisory.FieldSymptoms: "yellowing leaves with black spots",
			advisory.FieldRegion:   "Pune",
		},
		advisory.KindSoilAnalysis: {
			advisory.FieldPH:            "5.0",
			advisory.FieldOrganicMatter: "low",
			advisory.FieldDrainage:      "poor",
			advisory.FieldRegion:        "Nashik",
		},
		advisory.KindWeatherAdvisory: {
			advisory.FieldLocation:  "Nagpur",
			advisory.FieldWeather:   "heavy rain expected for three days",
			advisory.FieldCropStage: "flowering",
		},
		advisory.KindMarketAnalysis: {
			advisory.FieldCrop:     "onion",
			advisory.FieldLocation: "Lasalgaon",
			advisory.FieldQuantity: "10 quintals",
		},
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	for kind, req := range validRequests() {
		first, err := Build(kind, req)
		require.NoError(t, err, "kind %s", kind)
		second, err := Build(kind, req)
		require.NoError(t, err, "kind %s", kind)

		assert.Equal(t, first, second, "kind %s", kind)
		assert.NotEmpty(t, first, "kind %s", kind)
	}
}

func TestBuildIncludesRequestFields(t *testing.T) {
	for kind, req := range validRequests() {
		text, err := Build(kind, req)
		require.NoError(t, err, "kind %s", kind)
		for _, value := range req {
			assert.Contains(t, text, value, "kind %s", kind)
		}
	}
}

func TestBuildRejectsMissingFields(t *testing.T) {
	for kind, req := range validRequests() {
		for _, field := range advisory.RequiredFields(kind) {
			broken := req.Clone()
			delete(broken, field)

			_, err := Build(kind, broken)
			var validationErr *advisory.ValidationError
			require.True(t, errors.As(err, &validationErr), "kind %s without %s", kind, field)
			assert.Equal(t, field, validationErr.Field)
		}
	}
}

func TestSoilPromptDescribesConditions(t *testing.T) {
	text, err := Build(advisory.KindSoilAnalysis, validRequests()[advisory.KindSoilAnalysis])
	require.NoError(t, err)

	// pH 5.0 reads as acidic; the stated levels appear verbatim
	assert.Contains(t, text, "acidic")
	assert.Contains(t, text, "low")
	assert.Contains(t, text, "poor")
}

func TestDescribePH(t *testing.T) {
	tests := []struct {
		ph   string
		want string
	}{
		{"4.2", "strongly acidic"},
		{"5.0", "strongly acidic"},
		{"6.0", "acidic"},
		{"7.0", "neutral"},
		{"8.0", "slightly alkaline"},
		{"9.5", "strongly alkaline"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describePH(tt.ph), "ph %s", tt.ph)
	}
}

func TestSystemPromptFollowsSettings(t *testing.T) {
	settings := common.WithDefaultSettings()
	text := GetSystemPrompt(settings)
	assert.True(t, strings.HasPrefix(text, "You are GreenCure"))
	assert.Contains(t, text, settings.Region)

	settings.Language = "hi-IN"
	settings.Tone = "You are a terse agronomist."
	text = GetSystemPrompt(settings)
	assert.Contains(t, text, "hi-IN")
	assert.True(t, strings.HasPrefix(text, "You are a terse agronomist."))
}
