package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mohamedthameursassi/flightroutes/graph"
	"github.com/mohamedthameursassi/flightroutes/models"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type RoutingOptions struct {
	DefaultStrategy models.StrategyID
	CombinedScale   float64
	TotalsMinLegs   int
}

// RoutingService answers route queries against a graph built once at
// startup. It holds no per-query state and is safe for concurrent use.
type RoutingService struct {
	network         *Network
	strategies      map[models.StrategyID]graph.WeightStrategy
	defaultStrategy models.StrategyID
	totalsMinLegs   int
}

func NewRoutingService(network *Network, opts RoutingOptions) *RoutingService {
	strategies := map[models.StrategyID]graph.WeightStrategy{}
	for _, s := range []graph.WeightStrategy{
		graph.Unweighted{},
		graph.Combined{Scale: opts.CombinedScale},
		graph.CostOnly{},
		graph.DistanceOnly{},
		graph.DurationOnly{},
	} {
		strategies[s.ID()] = s
	}

	def := opts.DefaultStrategy
	if _, ok := strategies[def]; !ok {
		def = models.StrategyCombined
	}
	return &RoutingService{
		network:         network,
		strategies:      strategies,
		defaultStrategy: def,
		totalsMinLegs:   opts.TotalsMinLegs,
	}
}

// Register adds or replaces a strategy. It must be called before the service
// starts answering queries.
func (rs *RoutingService) Register(s graph.WeightStrategy) {
	rs.strategies[s.ID()] = s
}

// Strategy resolves a user-supplied strategy name; empty means the default.
func (rs *RoutingService) Strategy(name string) (graph.WeightStrategy, error) {
	if strings.TrimSpace(name) == "" {
		return rs.strategies[rs.defaultStrategy], nil
	}
	id := utils.ParseStrategy(name)
	if id == models.StrategyUnknown {
		id = models.StrategyID(strings.TrimSpace(name))
	}
	s, ok := rs.strategies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

func (rs *RoutingService) Strategies() []models.StrategyID {
	ids := make([]models.StrategyID, 0, len(rs.strategies))
	for id := range rs.strategies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (rs *RoutingService) DefaultStrategy() models.StrategyID { return rs.defaultStrategy }

func (rs *RoutingService) Locations() []models.Location {
	return rs.network.Catalogue.Locations()
}

// FindRoute computes the best path between two named locations and its
// per-leg and total figures.
func (rs *RoutingService) FindRoute(ctx context.Context, origin, destination, strategy string) (*models.RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, err := rs.Strategy(strategy)
	if err != nil {
		return nil, err
	}
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	g := rs.network.Graph
	path, err := graph.ShortestPath(g, origin, destination, s)
	if err != nil {
		return nil, err
	}
	summary, err := graph.Summarize(g, path)
	if err != nil {
		return nil, err
	}
	weight, err := graph.PathWeight(g, path, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graph.ErrUnknownEdge, err)
	}

	for i := range summary.Legs {
		leg := &summary.Legs[i]
		if km, err := rs.network.Catalogue.GreatCircleKm(leg.From, leg.To); err == nil {
			leg.GreatCircleKm = km
		}
	}

	return &models.RouteResult{
		Origin:      origin,
		Destination: destination,
		Strategy:    s.ID(),
		Path:        path,
		Legs:        summary.Legs,
		Totals:      summary.Totals,
		ShowTotals:  summary.ShowTotals(rs.totalsMinLegs),
		TotalWeight: weight,
	}, nil
}
