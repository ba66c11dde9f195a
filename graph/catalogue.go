package graph

import (
	"fmt"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/mohamedthameursassi/flightroutes/models"
)

const EarthRadiusKm = 6371.0

// Catalogue maps location names to coordinates. It is immutable once built
// and keeps the insertion order for listings.
type Catalogue struct {
	byName map[string]models.Location
	order  []string
}

func NewCatalogue(locations []models.Location) (*Catalogue, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: catalogue is empty", ErrInvalidLocation)
	}
	c := &Catalogue{
		byName: make(map[string]models.Location, len(locations)),
		order:  make([]string, 0, len(locations)),
	}
	for _, loc := range locations {
		// Record endpoints are trimmed before lookup, so names must be too.
		loc.Name = strings.TrimSpace(loc.Name)
		if loc.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidLocation)
		}
		if _, exists := c.byName[loc.Name]; exists {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidLocation, loc.Name)
		}
		if !latLng(loc.Coordinate).IsValid() {
			return nil, fmt.Errorf("%w: %q has coordinate (%.4f, %.4f) out of range",
				ErrInvalidLocation, loc.Name, loc.Coordinate.Latitude, loc.Coordinate.Longitude)
		}
		c.byName[loc.Name] = loc
		c.order = append(c.order, loc.Name)
	}
	return c, nil
}

func (c *Catalogue) Get(name string) (models.Coordinate, error) {
	loc, ok := c.byName[name]
	if !ok {
		return models.Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return loc.Coordinate, nil
}

func (c *Catalogue) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// All returns the location names in insertion order.
func (c *Catalogue) All() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalogue) Locations() []models.Location {
	out := make([]models.Location, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// GreatCircleKm returns the straight-line surface distance between two
// catalogued locations.
func (c *Catalogue) GreatCircleKm(a, b string) (float64, error) {
	ca, err := c.Get(a)
	if err != nil {
		return 0, err
	}
	cb, err := c.Get(b)
	if err != nil {
		return 0, err
	}
	return latLng(ca).Distance(latLng(cb)).Radians() * EarthRadiusKm, nil
}

func latLng(c models.Coordinate) s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}
