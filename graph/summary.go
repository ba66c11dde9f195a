package graph

import (
	"errors"
	"fmt"

	"github.com/mohamedthameursassi/flightroutes/models"
)

// Summarize walks the legs of p and accumulates their figures. A path with a
// single node yields no legs and zero totals.
func Summarize(g *RouteGraph, p Path) (models.TripSummary, error) {
	if len(p) == 0 {
		return models.TripSummary{}, errors.New("cannot summarize an empty path")
	}
	summary := models.TripSummary{Legs: make([]models.Leg, 0, p.Legs())}
	for i := 0; i+1 < len(p); i++ {
		from, to := p[i], p[i+1]
		attrs, err := g.EdgeAttributes(from, to)
		if err != nil {
			return models.TripSummary{}, fmt.Errorf("%w: leg %d %q - %q", ErrUnknownEdge, i, from, to)
		}
		summary.Legs = append(summary.Legs, models.Leg{
			From:        from,
			To:          to,
			Cost:        attrs.Cost,
			DistanceKm:  attrs.DistanceKm,
			DurationMin: attrs.DurationMin,
		})
		summary.Totals.Cost += attrs.Cost
		summary.Totals.DistanceKm += attrs.DistanceKm
		summary.Totals.DurationMin += attrs.DurationMin
	}
	return summary, nil
}
