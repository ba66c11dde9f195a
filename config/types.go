package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0,lte=65535"`
	Mode           string   `yaml:"mode" validate:"omitempty,oneof=debug release test"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NetworkConfig selects where the catalogue and connections come from.
// LocationsPath names a JSON network file whose locations are used when the
// connection source carries none (csv). Left empty, the built-in airports are
// used.
type NetworkConfig struct {
	Source          string `yaml:"source" validate:"oneof=static csv json sqlite snapshot"`
	Path            string `yaml:"path" validate:"required_unless=Source static"`
	LocationsPath   string `yaml:"locations_path"`
	Strictness      string `yaml:"strictness" validate:"omitempty,oneof=strict lenient"`
	DuplicatePolicy string `yaml:"duplicate_policy" validate:"omitempty,oneof=reject last_wins"`
}

// RoutingConfig contains path finding defaults
type RoutingConfig struct {
	DefaultStrategy string  `yaml:"default_strategy" validate:"omitempty,oneof=hops combined cost distance duration"`
	CombinedScale   float64 `yaml:"combined_scale" validate:"gt=0"`
	TotalsMinLegs   int     `yaml:"totals_min_legs" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Network NetworkConfig `yaml:"network" validate:"required"`
	Routing RoutingConfig `yaml:"routing"`
}
