package prompt

import "github.com/greencure/greencure-cli/advisory"

func GetCropRecommendationPrompt(req advisory.Request) string {
	return `As an agricultural expert, provide ONE single crop recommendation for:
- **Location**: ` + req[advisory.FieldLocation] + `
- **Soil Type**: ` + req[advisory.FieldSoilType] + `
- **Season**: ` + req[advisory.FieldSeason] + `
- **Farm Size**: ` + req[advisory.FieldFarmSize] + `
## Task
Recommend the MOST suitable crop for these conditions, covering:
1. The crop and why it fits the location, soil, and season.
2. The best planting window with specific months.
3. Three care and maintenance instructions.
4. Realistic expected yield for the stated farm size.
5. Current market value and demand outlook.
Return only ONE crop, not a list.`
}
