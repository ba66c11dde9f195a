package graph

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/mohamedthameursassi/flightroutes/data"
	"github.com/mohamedthameursassi/flightroutes/models"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

func mustCatalogue(t *testing.T, names ...string) *Catalogue {
	t.Helper()
	locs := make([]models.Location, 0, len(names))
	for i, n := range names {
		locs = append(locs, models.Location{Name: n, Coordinate: models.Coordinate{Latitude: float64(i), Longitude: float64(i)}})
	}
	cat, err := NewCatalogue(locs)
	if err != nil {
		t.Fatalf("NewCatalogue: %v", err)
	}
	return cat
}

func conn(u, v string, cost, km float64, minutes int) models.Connection {
	return models.Connection{
		Origin:      u,
		Destination: v,
		Attributes:  models.Attributes{Cost: cost, DistanceKm: km, DurationMin: minutes},
	}
}

func mustBuild(t *testing.T, cat *Catalogue, conns ...models.Connection) *RouteGraph {
	t.Helper()
	g, err := Build(cat, conns, DuplicateReject)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

// argentinaGraph builds the default six-airport network.
func argentinaGraph(t *testing.T) *RouteGraph {
	t.Helper()
	cat, err := NewCatalogue(data.ArgentinaAirports)
	if err != nil {
		t.Fatalf("NewCatalogue: %v", err)
	}
	conns := make([]models.Connection, 0, len(data.ArgentinaConnections))
	for _, r := range data.ArgentinaConnections {
		cost, err := strconv.ParseFloat(r.Cost, 64)
		if err != nil {
			t.Fatalf("cost %q: %v", r.Cost, err)
		}
		km, err := strconv.ParseFloat(r.Distance, 64)
		if err != nil {
			t.Fatalf("distance %q: %v", r.Distance, err)
		}
		minutes, err := utils.ParseDuration(r.Duration)
		if err != nil {
			t.Fatalf("duration %q: %v", r.Duration, err)
		}
		conns = append(conns, conn(r.Origin, r.Destination, cost, km, minutes))
	}
	return mustBuild(t, cat, conns...)
}

func equalPath(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nodeName(i int) string { return fmt.Sprintf("N%02d", i) }
