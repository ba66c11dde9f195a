// Command import_network validates a connection file and stores it in SQLite
// and/or a gob snapshot for faster startup.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/mohamedthameursassi/flightroutes/config"
	"github.com/mohamedthameursassi/flightroutes/database"
	"github.com/mohamedthameursassi/flightroutes/loader"
	"github.com/mohamedthameursassi/flightroutes/repository"
	"github.com/mohamedthameursassi/flightroutes/services"
	"github.com/mohamedthameursassi/flightroutes/utils"
)

func main() {
	source := flag.String("source", "csv", "input source: static, csv or json")
	input := flag.String("in", "", "input file (csv or json)")
	locations := flag.String("locations", "", "JSON file with locations, for csv input")
	strictness := flag.String("strictness", "strict", "strict or lenient")
	duplicates := flag.String("duplicates", "reject", "reject or last_wins")
	dbPath := flag.String("db", "", "SQLite database to write")
	snapshotPath := flag.String("snapshot", "", "gob snapshot to write")
	flag.Parse()

	utils.InitLogging()

	if *dbPath == "" && *snapshotPath == "" {
		log.Fatal("Nothing to do: set -db and/or -snapshot")
	}

	cfg := config.NetworkConfig{
		Source:          strings.ToLower(*source),
		Path:            *input,
		LocationsPath:   *locations,
		Strictness:      *strictness,
		DuplicatePolicy: *duplicates,
	}
	ctx := context.Background()

	// Building the graph validates the data before anything is written.
	network, err := services.BuildNetwork(ctx, cfg)
	if loader.IsDataError(err) {
		log.Fatalf("Network data is invalid: %v", err)
	}
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}
	for _, rejected := range network.Report.Rejected {
		log.Printf("Skipped %v", rejected)
	}

	out := network.Export()

	if *dbPath != "" {
		db, err := database.Open(database.Config{Path: *dbPath})
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		repo := repository.NewNetworkRepository(db)
		if err := repo.ReplaceNetwork(ctx, out); err != nil {
			log.Fatalf("Failed to store network: %v", err)
		}
		n, err := repo.CountConnections(ctx)
		if err != nil {
			log.Fatalf("Failed to count stored connections: %v", err)
		}
		log.Printf("Stored %d locations and %d connections in %s", len(out.Locations), n, *dbPath)
	}

	if *snapshotPath != "" {
		if err := loader.SaveSnapshot(*snapshotPath, out); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Wrote snapshot %s", *snapshotPath)
	}
}
