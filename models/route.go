package models

// Leg is one directly traversed connection within a path.
type Leg struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Cost        float64 `json:"cost"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
	// GreatCircleKm is the straight-line distance between the two locations.
	GreatCircleKm float64 `json:"great_circle_km,omitempty"`
}

// Totals sums every numeric leg field.
type Totals struct {
	Cost        float64 `json:"cost"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

// TripSummary holds per-leg figures and their totals. Totals are always
// computed; whether to display them is decided by ShowTotals.
type TripSummary struct {
	Legs   []Leg  `json:"legs"`
	Totals Totals `json:"totals"`
}

// ShowTotals reports whether the trip has enough legs for its totals to be
// worth displaying.
func (s TripSummary) ShowTotals(minLegs int) bool {
	return len(s.Legs) >= minLegs
}

type RouteResult struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Strategy    StrategyID `json:"strategy"`
	Path        []string   `json:"path"`
	Legs        []Leg      `json:"legs"`
	Totals      Totals     `json:"totals"`
	ShowTotals  bool       `json:"show_totals"`
	TotalWeight float64    `json:"total_weight"`
}
