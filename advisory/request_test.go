package advisory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSoilRequest() Request {
	return Request{
		FieldPH:            "5.0",
		FieldOrganicMatter: "low",
		FieldDrainage:      "poor",
		FieldRegion:        "Nashik",
	}
}

func TestValidateSoilAnalysis(t *testing.T) {
	require.NoError(t, validSoilRequest().Validate(KindSoilAnalysis))
}

func TestValidateMissingField(t *testing.T) {
	for _, field := range RequiredFields(KindSoilAnalysis) {
		req := validSoilRequest()
		delete(req, field)

		err := req.Validate(KindSoilAnalysis)
		require.Error(t, err, "expected validation error without %s", field)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, field, validationErr.Field)
	}
}

func TestValidatePHDomain(t *testing.T) {
	tests := []struct {
		ph    string
		valid bool
	}{
		{"1", true},
		{"7.5", true},
		{"14", true},
		{"0.5", false},
		{"14.1", false},
		{"-3", false},
		{"slightly sour", false},
	}

	for _, tt := range tests {
		req := validSoilRequest()
		req[FieldPH] = tt.ph
		err := req.Validate(KindSoilAnalysis)
		if tt.valid {
			assert.NoError(t, err, "ph %s", tt.ph)
		} else {
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "ph %s", tt.ph)
			assert.Equal(t, FieldPH, validationErr.Field)
		}
	}
}

func TestValidateEnumDomains(t *testing.T) {
	req := validSoilRequest()
	req[FieldOrganicMatter] = "plentiful"
	err := req.Validate(KindSoilAnalysis)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, FieldOrganicMatter, validationErr.Field)

	req = validSoilRequest()
	req[FieldDrainage] = "swampy"
	err = req.Validate(KindSoilAnalysis)
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, FieldDrainage, validationErr.Field)

	// Domains are case-insensitive
	req = validSoilRequest()
	req[FieldDrainage] = "Good"
	assert.NoError(t, req.Validate(KindSoilAnalysis))
}

func TestValidateUnknownKind(t *testing.T) {
	err := Request{}.Validate(Kind("horoscope"))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestEveryKindHasRequiredFields(t *testing.T) {
	for _, kind := range Kinds {
		assert.NotEmpty(t, RequiredFields(kind), "kind %s", kind)
		// An empty request must fail validation for every kind
		assert.Error(t, Request{}.Validate(kind), "kind %s", kind)
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("soil-analysis")
	require.NoError(t, err)
	assert.Equal(t, KindSoilAnalysis, kind)

	_, err = ParseKind("report")
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	original := validSoilRequest()
	clone := original.Clone()
	clone[FieldRegion] = "Pune"

	assert.Equal(t, "Nashik", original[FieldRegion])
}
