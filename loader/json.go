package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mohamedthameursassi/flightroutes/models"
)

// JSONSource reads a whole network document:
//
//	{"locations": [{"name": ..., "latitude": ..., "longitude": ...}],
//	 "connections": [{"origin": ..., "destination": ..., "cost": 95, "distance": 650, "duration": "1:20"}]}
//
// Numeric fields may be given as numbers or strings. A location may instead
// carry a nested "coordinate" object, the shape /api/locations returns.
type JSONSource struct {
	Path string

	network *models.Network
}

func NewJSONFileSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

type jsonNetwork struct {
	Locations []struct {
		Name       string             `json:"name"`
		Latitude   float64            `json:"latitude"`
		Longitude  float64            `json:"longitude"`
		Coordinate *models.Coordinate `json:"coordinate"`
	} `json:"locations"`
	Connections []struct {
		Origin      string      `json:"origin"`
		Destination string      `json:"destination"`
		Cost        interface{} `json:"cost"`
		Distance    interface{} `json:"distance"`
		Duration    interface{} `json:"duration"`
		Tiempo      interface{} `json:"tiempo"`
	} `json:"connections"`
}

// DecodeNetworkJSON parses a network document from r.
func DecodeNetworkJSON(r io.Reader) (*models.Network, error) {
	var raw jsonNetwork
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse network JSON: %w", err)
	}
	n := &models.Network{}
	for _, l := range raw.Locations {
		coord := models.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
		if l.Coordinate != nil {
			coord = *l.Coordinate
		}
		n.Locations = append(n.Locations, models.Location{Name: l.Name, Coordinate: coord})
	}
	for _, c := range raw.Connections {
		duration := c.Duration
		if duration == nil {
			duration = c.Tiempo
		}
		n.Connections = append(n.Connections, models.ConnectionRecord{
			Origin:      c.Origin,
			Destination: c.Destination,
			Cost:        toText(c.Cost),
			Distance:    toText(c.Distance),
			Duration:    toText(duration),
		})
	}
	return n, nil
}

func (s *JSONSource) load() (*models.Network, error) {
	if s.network != nil {
		return s.network, nil
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open network file: %w", err)
	}
	defer f.Close()
	n, err := DecodeNetworkJSON(f)
	if err != nil {
		return nil, err
	}
	s.network = n
	return n, nil
}

func (s *JSONSource) Records(ctx context.Context) ([]models.ConnectionRecord, error) {
	n, err := s.load()
	if err != nil {
		return nil, err
	}
	return n.Connections, nil
}

func (s *JSONSource) Locations(ctx context.Context) ([]models.Location, error) {
	n, err := s.load()
	if err != nil {
		return nil, err
	}
	return n.Locations, nil
}

// toText keeps the raw value textual so ParseRecord validates every source
// the same way. Missing values become "" and fail there.
func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
