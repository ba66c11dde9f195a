package loader

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"os"

	"github.com/mohamedthameursassi/flightroutes/models"
)

// SaveSnapshot writes the network as a gob file.
func SaveSnapshot(path string, n models.Network) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create snapshot: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(&n); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return file.Close()
}

func LoadSnapshot(path string) (*models.Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var n models.Network
	if err := gob.NewDecoder(file).Decode(&n); err != nil {
		return nil, fmt.Errorf("could not decode snapshot %s: %w", path, err)
	}

	log.Printf("Loaded snapshot from %s: %d locations, %d connections", path, len(n.Locations), len(n.Connections))
	return &n, nil
}

// SnapshotSource serves a gob snapshot, decoding it once.
type SnapshotSource struct {
	Path string

	network *models.Network
}

func (s *SnapshotSource) load() (*models.Network, error) {
	if s.network == nil {
		n, err := LoadSnapshot(s.Path)
		if err != nil {
			return nil, err
		}
		s.network = n
	}
	return s.network, nil
}

func (s *SnapshotSource) Records(ctx context.Context) ([]models.ConnectionRecord, error) {
	n, err := s.load()
	if err != nil {
		return nil, err
	}
	return n.Connections, nil
}

func (s *SnapshotSource) Locations(ctx context.Context) ([]models.Location, error) {
	n, err := s.load()
	if err != nil {
		return nil, err
	}
	return n.Locations, nil
}
