package data

import "github.com/mohamedthameursassi/flightroutes/models"

// ArgentinaAirports is the default catalogue, listed in display order.
var ArgentinaAirports = []models.Location{
	{Name: "Ezeiza", Coordinate: models.Coordinate{Latitude: -34.8222, Longitude: -58.5358}},
	{Name: "Córdoba", Coordinate: models.Coordinate{Latitude: -31.3156, Longitude: -64.2088}},
	{Name: "Mendoza", Coordinate: models.Coordinate{Latitude: -32.8317, Longitude: -68.7928}},
	{Name: "Salta", Coordinate: models.Coordinate{Latitude: -24.8560, Longitude: -65.4862}},
	{Name: "Ushuaia", Coordinate: models.Coordinate{Latitude: -54.8433, Longitude: -68.2950}},
	{Name: "Bariloche", Coordinate: models.Coordinate{Latitude: -41.1512, Longitude: -71.1579}},
}

// ArgentinaConnections fully connects ArgentinaAirports.
// Cost is in USD, distance in km, duration is flight time.
var ArgentinaConnections = []models.ConnectionRecord{
	{Origin: "Ezeiza", Destination: "Córdoba", Cost: "95", Distance: "650", Duration: "1:20"},
	{Origin: "Ezeiza", Destination: "Mendoza", Cost: "130", Distance: "980", Duration: "1:55"},
	{Origin: "Ezeiza", Destination: "Salta", Cost: "150", Distance: "1280", Duration: "2:10"},
	{Origin: "Ezeiza", Destination: "Ushuaia", Cost: "260", Distance: "2380", Duration: "3:30"},
	{Origin: "Ezeiza", Destination: "Bariloche", Cost: "170", Distance: "1330", Duration: "2:20"},
	{Origin: "Córdoba", Destination: "Mendoza", Cost: "70", Distance: "470", Duration: "1:05"},
	{Origin: "Córdoba", Destination: "Salta", Cost: "90", Distance: "730", Duration: "1:25"},
	{Origin: "Córdoba", Destination: "Ushuaia", Cost: "310", Distance: "2620", Duration: "4:10"},
	{Origin: "Córdoba", Destination: "Bariloche", Cost: "160", Distance: "1170", Duration: "2:05"},
	{Origin: "Mendoza", Destination: "Salta", Cost: "120", Distance: "930", Duration: "1:50"},
	{Origin: "Mendoza", Destination: "Ushuaia", Cost: "300", Distance: "2450", Duration: "4:00"},
	{Origin: "Mendoza", Destination: "Bariloche", Cost: "110", Distance: "930", Duration: "1:45"},
	{Origin: "Salta", Destination: "Ushuaia", Cost: "380", Distance: "3340", Duration: "5:15"},
	{Origin: "Salta", Destination: "Bariloche", Cost: "210", Distance: "1860", Duration: "3:00"},
	{Origin: "Ushuaia", Destination: "Bariloche", Cost: "140", Distance: "1530", Duration: "2:25"},
}

// ArgentinaNetwork bundles the default tables.
func ArgentinaNetwork() models.Network {
	locs := make([]models.Location, len(ArgentinaAirports))
	copy(locs, ArgentinaAirports)
	conns := make([]models.ConnectionRecord, len(ArgentinaConnections))
	copy(conns, ArgentinaConnections)
	return models.Network{Locations: locs, Connections: conns}
}
