package prompt

import "github.com/greencure/greencure-cli/advisory"

func GetDiseaseDiagnosisPrompt(req advisory.Request) string {
	return `As a plant pathology expert, analyze this case:
- **Crop**: ` + req[advisory.FieldCrop] + `
- **Symptoms**: ` + req[advisory.FieldSymptoms] + `
- **Region**: ` + req[advisory.FieldRegion] + `
## Task
Provide a diagnosis covering:
1. The most likely disease given the symptoms, and its severity (low, medium, or high).
2. The key symptoms that support the diagnosis.
3. Treatment steps, in the order they should be applied.
4. Prevention measures for the next season.
Focus on treatments available in the region's agricultural context.`
}
