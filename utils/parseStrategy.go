package utils

import (
	"strings"

	"github.com/mohamedthameursassi/flightroutes/models"
)

func ParseStrategy(input string) models.StrategyID {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "hops", "unweighted", "fewest-stops", "stops":
		return models.StrategyHops
	case "combined", "weighted", "best":
		return models.StrategyCombined
	case "cost", "price", "cheapest":
		return models.StrategyCost
	case "distance", "shortest", "km":
		return models.StrategyDistance
	case "duration", "time", "tiempo", "fastest":
		return models.StrategyDuration
	default:
		return models.StrategyUnknown
	}
}
