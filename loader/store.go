// Package loader reads attributed connection records from a source and turns
// them into validated connections for the route graph.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/mohamedthameursassi/flightroutes/graph"
	"github.com/mohamedthameursassi/flightroutes/models"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

// Strictness decides what happens to a record that fails validation.
type Strictness int

const (
	// Strict fails the whole load on the first bad record.
	Strict Strictness = iota
	// Lenient rejects bad records, reports them and keeps the rest.
	Lenient
)

func (s Strictness) String() string {
	if s == Lenient {
		return "lenient"
	}
	return "strict"
}

func ParseStrictness(s string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fmt.Errorf("unknown strictness %q", s)
	}
}

// RecordSource yields raw connection records.
type RecordSource interface {
	Records(ctx context.Context) ([]models.ConnectionRecord, error)
}

// LocationSource yields the catalogue entries a source carries.
type LocationSource interface {
	Locations(ctx context.Context) ([]models.Location, error)
}

type Options struct {
	Strictness Strictness
}

// RecordError ties a failure to the record that caused it. Row is 1-based
// within the source's records.
type RecordError struct {
	Row    int
	Record models.ConnectionRecord
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s - %s): %v", e.Row, e.Record.Origin, e.Record.Destination, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

type LoadReport struct {
	Connections []models.Connection
	Rejected    []*RecordError
	Total       int
}

// Load reads every record of src and validates it against cat.
func Load(ctx context.Context, src RecordSource, cat *graph.Catalogue, opts Options) (*LoadReport, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read connection records: %w", err)
	}

	report := &LoadReport{
		Connections: make([]models.Connection, 0, len(records)),
		Total:       len(records),
	}
	for i, r := range records {
		c, err := ParseRecord(r, cat)
		if err == nil {
			report.Connections = append(report.Connections, c)
			continue
		}
		recErr := &RecordError{Row: i + 1, Record: r, Err: err}
		if opts.Strictness == Strict {
			return nil, recErr
		}
		log.Printf("Rejected connection %v", recErr)
		report.Rejected = append(report.Rejected, recErr)
	}
	return report, nil
}

// ParseRecord converts one raw record into a connection.
func ParseRecord(r models.ConnectionRecord, cat *graph.Catalogue) (models.Connection, error) {
	origin := strings.TrimSpace(r.Origin)
	destination := strings.TrimSpace(r.Destination)
	if !cat.Has(origin) {
		return models.Connection{}, fmt.Errorf("%w: %q", graph.ErrUnknownLocation, origin)
	}
	if !cat.Has(destination) {
		return models.Connection{}, fmt.Errorf("%w: %q", graph.ErrUnknownLocation, destination)
	}
	if origin == destination {
		return models.Connection{}, fmt.Errorf("%w: %q", graph.ErrSelfLoop, origin)
	}
	cost, err := parseAmount("cost", r.Cost)
	if err != nil {
		return models.Connection{}, err
	}
	km, err := parseAmount("distance", r.Distance)
	if err != nil {
		return models.Connection{}, err
	}
	minutes, err := utils.ParseDuration(r.Duration)
	if err != nil {
		return models.Connection{}, err
	}
	return models.Connection{
		Origin:      origin,
		Destination: destination,
		Attributes:  models.Attributes{Cost: cost, DistanceKm: km, DurationMin: minutes},
	}, nil
}

func parseAmount(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", graph.ErrInvalidAttribute, field, raw)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", graph.ErrInvalidAttribute, field, raw)
	}
	return v, nil
}

// IsDataError reports whether err comes from malformed or inconsistent input
// rather than from the source itself.
func IsDataError(err error) bool {
	return errors.Is(err, graph.ErrUnknownLocation) ||
		errors.Is(err, utils.ErrInvalidDuration) ||
		errors.Is(err, graph.ErrInvalidAttribute) ||
		errors.Is(err, graph.ErrSelfLoop)
}
