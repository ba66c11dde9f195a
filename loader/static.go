package loader

import (
	"context"

	"github.com/mohamedthameursassi/flightroutes/models"
)

// StaticSource serves an in-memory network.
type StaticSource struct {
	Network models.Network
}

func (s StaticSource) Records(ctx context.Context) ([]models.ConnectionRecord, error) {
	out := make([]models.ConnectionRecord, len(s.Network.Connections))
	copy(out, s.Network.Connections)
	return out, nil
}

func (s StaticSource) Locations(ctx context.Context) ([]models.Location, error) {
	out := make([]models.Location, len(s.Network.Locations))
	copy(out, s.Network.Locations)
	return out, nil
}
