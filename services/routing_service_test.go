package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mohamedthameursassi/flightroutes/config"
	"github.com/mohamedthameursassi/flightroutes/data"
	"github.com/mohamedthameursassi/flightroutes/database"
	"github.com/mohamedthameursassi/flightroutes/graph"
	"github.com/mohamedthameursassi/flightroutes/loader"
	"github.com/mohamedthameursassi/flightroutes/models"
	"github.com/mohamedthameursassi/flightroutes/repository"
)

func staticService(t *testing.T) *RoutingService {
	t.Helper()
	network, err := BuildNetwork(context.Background(), config.NetworkConfig{Source: "static"})
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	return NewRoutingService(network, RoutingOptions{DefaultStrategy: models.StrategyCombined, TotalsMinLegs: 2})
}

func TestFindRouteCombined(t *testing.T) {
	rs := staticService(t)
	res, err := rs.FindRoute(context.Background(), "Salta", "Ushuaia", "combined")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	want := []string{"Salta", "Bariloche", "Ushuaia"}
	if len(res.Path) != len(want) {
		t.Fatalf("path = %v, want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Fatalf("path = %v, want %v", res.Path, want)
		}
	}
	if res.Strategy != models.StrategyCombined || !res.ShowTotals {
		t.Errorf("strategy %q show_totals %v", res.Strategy, res.ShowTotals)
	}
	if res.Totals.Cost != 350 || res.Totals.DurationMin != 325 {
		t.Errorf("totals = %+v", res.Totals)
	}
	if res.TotalWeight != 350*1000+3390+325 {
		t.Errorf("total weight = %v", res.TotalWeight)
	}
	for _, leg := range res.Legs {
		if leg.GreatCircleKm <= 0 {
			t.Errorf("leg %s-%s has no great-circle distance", leg.From, leg.To)
		}
	}
}

func TestFindRouteHopsHidesTotalsForDirectFlight(t *testing.T) {
	rs := staticService(t)
	res, err := rs.FindRoute(context.Background(), "Ezeiza", "Ushuaia", "hops")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if len(res.Path) != 2 || res.Path[0] != "Ezeiza" || res.Path[1] != "Ushuaia" {
		t.Errorf("path = %v", res.Path)
	}
	if res.ShowTotals {
		t.Error("totals shown for a single-leg trip")
	}
	if res.Totals.Cost != 260 {
		t.Errorf("totals still computed: %+v", res.Totals)
	}
}

func TestFindRouteDefaultsAndAliases(t *testing.T) {
	rs := staticService(t)
	res, err := rs.FindRoute(context.Background(), " Ezeiza ", "Salta", "")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if res.Strategy != models.StrategyCombined || res.Origin != "Ezeiza" {
		t.Errorf("got strategy %q origin %q", res.Strategy, res.Origin)
	}
	res, err = rs.FindRoute(context.Background(), "Ezeiza", "Salta", "fewest-stops")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if res.Strategy != models.StrategyHops {
		t.Errorf("alias resolved to %q", res.Strategy)
	}
}

func TestFindRouteSameLocation(t *testing.T) {
	rs := staticService(t)
	res, err := rs.FindRoute(context.Background(), "Mendoza", "Mendoza", "combined")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if len(res.Path) != 1 || len(res.Legs) != 0 || res.TotalWeight != 0 || res.ShowTotals {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestFindRouteErrors(t *testing.T) {
	rs := staticService(t)
	ctx := context.Background()
	if _, err := rs.FindRoute(ctx, "Atlantis", "Ezeiza", "hops"); !errors.Is(err, graph.ErrUnknownLocation) {
		t.Errorf("unknown location err = %v", err)
	}
	if _, err := rs.FindRoute(ctx, "Ezeiza", "Salta", "teleport"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("unknown strategy err = %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := rs.FindRoute(cancelled, "Ezeiza", "Salta", "hops"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled err = %v", err)
	}
}

func TestFindRouteNoPath(t *testing.T) {
	locs := append([]models.Location{}, data.ArgentinaAirports...)
	locs = append(locs, models.Location{Name: "Malvinas", Coordinate: models.Coordinate{Latitude: -51.69, Longitude: -57.86}})
	network, err := Assemble(context.Background(), locs, loader.StaticSource{Network: data.ArgentinaNetwork()}, loader.Options{}, graph.DuplicateReject)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	rs := NewRoutingService(network, RoutingOptions{})
	_, err = rs.FindRoute(context.Background(), "Ezeiza", "Malvinas", "combined")
	if !errors.Is(err, graph.ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestRegisterCustomStrategy(t *testing.T) {
	rs := staticService(t)
	rs.Register(graph.StrategyFunc{Name: "scenic", Fn: func(_, _ string, a models.Attributes) float64 {
		return 1 / (1 + a.DistanceKm)
	}})
	res, err := rs.FindRoute(context.Background(), "Ezeiza", "Córdoba", "scenic")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if res.Strategy != "scenic" {
		t.Errorf("strategy = %q", res.Strategy)
	}
	if len(rs.Strategies()) != 6 {
		t.Errorf("strategies = %v", rs.Strategies())
	}
}

func TestBuildNetworkSources(t *testing.T) {
	dir := t.TempDir()
	network := data.ArgentinaNetwork()
	ctx := context.Background()

	csvPath := filepath.Join(dir, "connections.csv")
	var buf bytes.Buffer
	if err := loader.WriteCSV(&buf, network.Connections); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if err := os.WriteFile(csvPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	snapPath := filepath.Join(dir, "network.gob")
	if err := loader.SaveSnapshot(snapPath, network); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	dbPath := filepath.Join(dir, "network.db")
	db, err := database.Open(database.Config{Path: dbPath})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := repository.NewNetworkRepository(db).ReplaceNetwork(ctx, network); err != nil {
		t.Fatalf("ReplaceNetwork: %v", err)
	}
	db.Close()

	tests := []struct {
		name string
		cfg  config.NetworkConfig
	}{
		{"static", config.NetworkConfig{Source: "static"}},
		{"csv", config.NetworkConfig{Source: "csv", Path: csvPath}},
		{"shipped csv", config.NetworkConfig{Source: "csv", Path: filepath.Join("..", "data", "connections.csv")}},
		{"snapshot", config.NetworkConfig{Source: "snapshot", Path: snapPath}},
		{"sqlite", config.NetworkConfig{Source: "sqlite", Path: dbPath}},
		{"json", config.NetworkConfig{Source: "json", Path: filepath.Join("..", "data", "network.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := BuildNetwork(ctx, tt.cfg)
			if err != nil {
				t.Fatalf("BuildNetwork: %v", err)
			}
			if n.Graph.NodeCount() != 6 || n.Graph.EdgeCount() != 15 {
				t.Errorf("graph has %d nodes %d edges", n.Graph.NodeCount(), n.Graph.EdgeCount())
			}
		})
	}

	if _, err := BuildNetwork(ctx, config.NetworkConfig{Source: "ftp"}); err == nil {
		t.Error("expected error for unknown source")
	}
	if _, err := BuildNetwork(ctx, config.NetworkConfig{Source: "csv", Path: filepath.Join(dir, "missing.csv")}); err == nil {
		t.Error("expected error for missing csv")
	}
}

func TestBuildNetworkMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")
	_, err := BuildNetwork(context.Background(), config.NetworkConfig{Source: "sqlite", Path: path})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want a missing file error", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("database file was created: %v", statErr)
	}
}

func TestBuildNetworkEmptySource(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := database.Open(database.Config{Path: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	db.Close()

	if _, err := BuildNetwork(ctx, config.NetworkConfig{Source: "sqlite", Path: path}); !errors.Is(err, ErrEmptyNetwork) {
		t.Errorf("empty database err = %v, want ErrEmptyNetwork", err)
	}

	bad := data.ArgentinaNetwork()
	for i := range bad.Connections {
		bad.Connections[i].Duration = "late"
	}
	_, err = Assemble(ctx, bad.Locations, loader.StaticSource{Network: bad}, loader.Options{Strictness: loader.Lenient}, graph.DuplicateReject)
	if !errors.Is(err, ErrEmptyNetwork) {
		t.Errorf("all rejected err = %v, want ErrEmptyNetwork", err)
	}
}

func TestBuildNetworkDuplicatePolicy(t *testing.T) {
	network := data.ArgentinaNetwork()
	network.Connections = append(network.Connections, models.ConnectionRecord{
		Origin: "Córdoba", Destination: "Ezeiza", Cost: "1", Distance: "650", Duration: "1:20",
	})
	src := loader.StaticSource{Network: network}

	if _, err := Assemble(context.Background(), network.Locations, src, loader.Options{}, graph.DuplicateReject); !errors.Is(err, graph.ErrDuplicateEdge) {
		t.Errorf("reject policy err = %v, want ErrDuplicateEdge", err)
	}
	n, err := Assemble(context.Background(), network.Locations, src, loader.Options{}, graph.DuplicateLastWins)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	a, _ := n.Graph.EdgeAttributes("Ezeiza", "Córdoba")
	if a.Cost != 1 {
		t.Errorf("cost = %v, want the later record", a.Cost)
	}
}

func TestExportRebuildsSameGraph(t *testing.T) {
	ctx := context.Background()
	original, err := BuildNetwork(ctx, config.NetworkConfig{Source: "static"})
	if err != nil {
		t.Fatalf("BuildNetwork: %v", err)
	}
	out := original.Export()
	if len(out.Connections) != 15 || len(out.Locations) != 6 {
		t.Fatalf("exported %d locations %d connections", len(out.Locations), len(out.Connections))
	}
	rebuilt, err := Assemble(ctx, out.Locations, loader.StaticSource{Network: out}, loader.Options{}, graph.DuplicateReject)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, c := range original.Graph.Connections() {
		a, err := rebuilt.Graph.EdgeAttributes(c.Origin, c.Destination)
		if err != nil {
			t.Fatalf("missing edge %s - %s", c.Origin, c.Destination)
		}
		if a != c.Attributes {
			t.Errorf("%s - %s: %+v, want %+v", c.Origin, c.Destination, a, c.Attributes)
		}
	}
}
