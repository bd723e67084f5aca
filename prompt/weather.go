package prompt

import "github.com/greencure/greencure-cli/advisory"

func GetWeatherAdvisoryPrompt(req advisory.Request) string {
	return `As a meteorological agriculture advisor, provide weather-based guidance:
- **Location**: ` + req[advisory.FieldLocation] + `
- **Current Weather**: ` + req[advisory.FieldWeather] + `
- **Crop Stage**: ` + req[advisory.FieldCropStage] + `
## Task
Provide a weather advisory covering:
1. A summary of the current conditions.
2. How this weather affects farming activities at the stated crop stage.
3. Weather-based recommendations for the coming days.
4. Any alerts the farmer should act on immediately.`
}
