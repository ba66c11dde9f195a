package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mohamedthameursassi/flightroutes/models"
)

// CSVSource reads connections from a delimited file with a header row.
// Columns are matched by name: origin, destination, cost, distance and
// duration (or tiempo). Extra columns are ignored.
type CSVSource struct {
	Path   string
	Reader io.Reader
	Comma  rune
}

func NewCSVFileSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

var csvColumns = map[string]string{
	"origin":      "origin",
	"origen":      "origin",
	"destination": "destination",
	"destino":     "destination",
	"cost":        "cost",
	"costo":       "cost",
	"distance":    "distance",
	"distancia":   "distance",
	"duration":    "duration",
	"tiempo":      "duration",
}

func (s *CSVSource) Records(ctx context.Context) ([]models.ConnectionRecord, error) {
	r := s.Reader
	if r == nil {
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open connections file: %w", err)
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	if s.Comma != 0 {
		cr.Comma = s.Comma
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}
	idx := make(map[string]int)
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if col, ok := csvColumns[key]; ok {
			idx[col] = i
		}
	}
	for _, col := range []string{"origin", "destination", "cost", "distance", "duration"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	var records []models.ConnectionRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read CSV row: %w", err)
		}
		get := func(col string) string {
			if i := idx[col]; i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		records = append(records, models.ConnectionRecord{
			Origin:      get("origin"),
			Destination: get("destination"),
			Cost:        get("cost"),
			Distance:    get("distance"),
			Duration:    get("duration"),
		})
	}
	return records, nil
}

// WriteCSV writes records with the canonical header.
func WriteCSV(w io.Writer, records []models.ConnectionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"origin", "destination", "cost", "distance", "duration"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Origin, r.Destination, r.Cost, r.Distance, r.Duration}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
