package models

// Attributes are the figures carried by a connection. They apply identically
// in both directions of travel.
type Attributes struct {
	Cost        float64 `json:"cost"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

// Connection is an undirected, attributed link between two locations.
type Connection struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Attributes  Attributes `json:"attributes"`
}

// ConnectionRecord is one row of a tabular connection source, before parsing.
// Duration is textual ("H:MM" or "HH:MM").
type ConnectionRecord struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Cost        string `json:"cost"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

// Network is a complete catalogue plus its raw connection records.
type Network struct {
	Locations   []Location         `json:"locations"`
	Connections []ConnectionRecord `json:"connections"`
}
