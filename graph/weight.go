package graph

import "github.com/mohamedthameursassi/flightroutes/models"

// DefaultCombinedScale makes cost dominate the combined weight whenever two
// costs differ by at least one unit; distance and duration break ties.
const DefaultCombinedScale = 1000.0

// WeightStrategy turns edge attributes into the scalar minimised by the path
// finder. Implementations must be pure, non-negative and give the same value
// for (u, v) and (v, u).
type WeightStrategy interface {
	ID() models.StrategyID
	Weight(u, v string, a models.Attributes) float64
}

// Unweighted counts hops. ShortestPath answers it with a breadth-first search.
type Unweighted struct{}

func (Unweighted) ID() models.StrategyID { return models.StrategyHops }

func (Unweighted) Weight(_, _ string, _ models.Attributes) float64 { return 1 }

// Combined sums scaled cost, kilometres and minutes. The units are not
// normalised against each other. A Scale of zero or less uses
// DefaultCombinedScale.
type Combined struct {
	Scale float64
}

func (Combined) ID() models.StrategyID { return models.StrategyCombined }

func (c Combined) Weight(_, _ string, a models.Attributes) float64 {
	scale := c.Scale
	if scale <= 0 {
		scale = DefaultCombinedScale
	}
	return a.Cost*scale + a.DistanceKm + float64(a.DurationMin)
}

type CostOnly struct{}

func (CostOnly) ID() models.StrategyID { return models.StrategyCost }

func (CostOnly) Weight(_, _ string, a models.Attributes) float64 { return a.Cost }

type DistanceOnly struct{}

func (DistanceOnly) ID() models.StrategyID { return models.StrategyDistance }

func (DistanceOnly) Weight(_, _ string, a models.Attributes) float64 { return a.DistanceKm }

type DurationOnly struct{}

func (DurationOnly) ID() models.StrategyID { return models.StrategyDuration }

func (DurationOnly) Weight(_, _ string, a models.Attributes) float64 { return float64(a.DurationMin) }

// StrategyFunc adapts a plain function to WeightStrategy.
type StrategyFunc struct {
	Name models.StrategyID
	Fn   func(u, v string, a models.Attributes) float64
}

func (s StrategyFunc) ID() models.StrategyID { return s.Name }

func (s StrategyFunc) Weight(u, v string, a models.Attributes) float64 { return s.Fn(u, v, a) }

func isUnweighted(s WeightStrategy) bool {
	switch s.(type) {
	case Unweighted, *Unweighted:
		return true
	}
	return false
}
