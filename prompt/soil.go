package prompt

import (
	"strconv"

	"github.com/greencure/greencure-cli/advisory"
)

func GetSoilAnalysisPrompt(req advisory.Request) string {
	ph := req[advisory.FieldPH]
	return `As a soil scientist, analyze these soil parameters:
- **pH Level**: ` + ph + ` (` + describePH(ph) + `)
- **Organic Matter**: ` + req[advisory.FieldOrganicMatter] + `
- **Drainage**: ` + req[advisory.FieldDrainage] + `
- **Region**: ` + req[advisory.FieldRegion] + `
## Task
Provide a comprehensive soil analysis covering:
1. Soil classification based on the given parameters.
2. What the pH level implies for nutrient availability.
3. Likely nutrient deficiencies or excesses.
4. Improvement suggestions (amendments, drainage works, organic inputs).
5. Crops suited to this soil in the stated region.`
}

// describePH maps a pH value onto the qualitative class agronomists use.
// The value was validated as a number in [1,14] before the template runs.
func describePH(value string) string {
	ph, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "unclassified"
	}
	switch {
	case ph < 5.5:
		return "strongly acidic"
	case ph < 6.5:
		return "acidic"
	case ph <= 7.5:
		return "neutral"
	case ph <= 8.5:
		return "slightly alkaline"
	default:
		return "strongly alkaline"
	}
}
