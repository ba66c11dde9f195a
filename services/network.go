package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mohamedthameursassi/flightroutes/config"
	"github.com/mohamedthameursassi/flightroutes/data"
	"github.com/mohamedthameursassi/flightroutes/database"
	"github.com/mohamedthameursassi/flightroutes/graph"
	"github.com/mohamedthameursassi/flightroutes/loader"
	"github.com/mohamedthameursassi/flightroutes/models"
	"github.com/mohamedthameursassi/flightroutes/repository"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

// ErrEmptyNetwork means a source produced no usable connection records.
var ErrEmptyNetwork = errors.New("network has no connections")

// Network is the catalogue and route graph built once at startup.
type Network struct {
	Catalogue *graph.Catalogue
	Graph     *graph.RouteGraph
	Report    *loader.LoadReport
}

// BuildNetwork loads the configured sources and builds the route graph.
func BuildNetwork(ctx context.Context, cfg config.NetworkConfig) (*Network, error) {
	strictness, err := loader.ParseStrictness(cfg.Strictness)
	if err != nil {
		return nil, err
	}
	policy, err := graph.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	if err != nil {
		return nil, err
	}

	var records loader.RecordSource
	var locations loader.LocationSource
	switch cfg.Source {
	case "", "static":
		src := loader.StaticSource{Network: data.ArgentinaNetwork()}
		records, locations = src, src
	case "csv":
		records = loader.NewCSVFileSource(cfg.Path)
	case "json":
		src := loader.NewJSONFileSource(cfg.Path)
		records, locations = src, src
	case "snapshot":
		src := &loader.SnapshotSource{Path: cfg.Path}
		records, locations = src, src
	case "sqlite":
		// Opening a missing file would create an empty database.
		if _, err := os.Stat(cfg.Path); err != nil {
			return nil, fmt.Errorf("could not open network database: %w", err)
		}
		db, err := database.Open(database.Config{Path: cfg.Path})
		if err != nil {
			return nil, err
		}
		defer db.Close()
		repo := repository.NewNetworkRepository(db)
		records, locations = repo, repo
	default:
		return nil, fmt.Errorf("unknown network source %q", cfg.Source)
	}

	locs, err := catalogueEntries(ctx, locations, cfg.LocationsPath)
	if err != nil {
		return nil, err
	}
	return Assemble(ctx, locs, records, loader.Options{Strictness: strictness}, policy)
}

// Assemble validates the catalogue and records and builds the graph.
func Assemble(ctx context.Context, locs []models.Location, records loader.RecordSource, opts loader.Options, policy graph.DuplicatePolicy) (*Network, error) {
	cat, err := graph.NewCatalogue(locs)
	if err != nil {
		return nil, fmt.Errorf("could not build catalogue: %w", err)
	}
	report, err := loader.Load(ctx, records, cat, opts)
	if err != nil {
		return nil, err
	}
	if len(report.Connections) == 0 {
		return nil, fmt.Errorf("%w: %d records read, %d rejected", ErrEmptyNetwork, report.Total, len(report.Rejected))
	}
	g, err := graph.Build(cat, report.Connections, policy)
	if err != nil {
		return nil, fmt.Errorf("could not build route graph: %w", err)
	}

	log.Printf("Route graph ready: %d locations, %d connections (%d records, %d rejected, duplicates: %s)",
		g.NodeCount(), g.EdgeCount(), report.Total, len(report.Rejected), policy)
	return &Network{Catalogue: cat, Graph: g, Report: report}, nil
}

// catalogueEntries prefers the source's own locations, then an explicit
// locations file, then the built-in airports.
func catalogueEntries(ctx context.Context, src loader.LocationSource, locationsPath string) ([]models.Location, error) {
	if src != nil {
		locs, err := src.Locations(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not read locations: %w", err)
		}
		if len(locs) > 0 {
			return locs, nil
		}
	}
	if locationsPath != "" {
		locs, err := loader.NewJSONFileSource(locationsPath).Locations(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not read locations file: %w", err)
		}
		return locs, nil
	}
	log.Println("No locations in the network source, using built-in airports")
	return data.ArgentinaNetwork().Locations, nil
}

// Export returns the validated network as raw tables, one record per edge.
// Rejected records and overwritten duplicates are not included.
func (n *Network) Export() models.Network {
	conns := n.Graph.Connections()
	records := make([]models.ConnectionRecord, 0, len(conns))
	for _, c := range conns {
		records = append(records, models.ConnectionRecord{
			Origin:      c.Origin,
			Destination: c.Destination,
			Cost:        strconv.FormatFloat(c.Attributes.Cost, 'f', -1, 64),
			Distance:    strconv.FormatFloat(c.Attributes.DistanceKm, 'f', -1, 64),
			Duration:    utils.FormatDuration(c.Attributes.DurationMin),
		})
	}
	return models.Network{Locations: n.Catalogue.Locations(), Connections: records}
}
