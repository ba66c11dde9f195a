package utils

import (
	"testing"

	"github.com/mohamedthameursassi/flightroutes/models"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]models.StrategyID{
		"hops":         models.StrategyHops,
		"HOPS":         models.StrategyHops,
		"fewest-stops": models.StrategyHops,
		"combined":     models.StrategyCombined,
		"tiempo":       models.StrategyDuration,
		"cheapest":     models.StrategyCost,
		"km":           models.StrategyDistance,
		"teleport":     models.StrategyUnknown,
	}
	for in, want := range cases {
		if got := ParseStrategy(in); got != want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", in, got, want)
		}
	}
}
