package prompt

import (
	"fmt"

	"github.com/greencure/greencure-cli/common"
)

func GetSystemPrompt(settings common.Settings) string {
	basePrompt := getTone(settings) + `
` + getProfile(settings) + `
- Ground every recommendation in the conditions the farmer provided; do not invent parameters that were not given.
- Consider the agricultural conditions, monsoon patterns, and local market demands of ` + settings.Region + `.
- Prefer treatments and inputs that are actually available to smallholder farmers in the region.
- Answer in plain prose with short bullet lists where helpful; do not wrap the response in a code block.`
	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}

func getProfile(settings common.Settings) string {
	switch settings.Profile {
	case common.ProfilePractical:
		return "- You give practical, field-ready advice in plain language a farmer can act on today."
	case common.ProfileAgronomic:
		return "- You give technically detailed advice, naming nutrients, dosages, and varieties precisely."
	}

	return ""
}

func getTone(settings common.Settings) string {
	tone := "You are GreenCure, an agricultural advisor trained to assist farmers and extension workers."
	if settings.Tone != "" {
		tone = settings.Tone
	}

	return tone + `
You will be asked for crop recommendations, disease diagnoses, soil analyses, weather advisories, and market analyses.
Base your answer only on the parameters in the request. If a critical parameter is ambiguous, state the assumption you made.`
}
