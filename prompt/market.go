package prompt

import "github.com/greencure/greencure-cli/advisory"

func GetMarketAnalysisPrompt(req advisory.Request) string {
	return `As a market analyst specializing in agricultural markets, analyze:
- **Crop**: ` + req[advisory.FieldCrop] + `
- **Location**: ` + req[advisory.FieldLocation] + `
- **Quantity**: ` + req[advisory.FieldQuantity] + `
## Task
Provide a market analysis covering:
1. The current market price range for this crop and location.
2. The price trend and a short-term outlook.
3. Current demand status.
4. Tips for selling the stated quantity at a better price.
Consider local mandi prices and regional market variations.`
}
