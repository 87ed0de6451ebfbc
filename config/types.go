package config

// AgencyConfig describes the agency the parser runs for
type AgencyConfig struct {
	Name      string `yaml:"name" validate:"required"`
	Locale    string `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
	Color     string `yaml:"color" validate:"omitempty,hexadecimal,len=6"`
	RouteType int    `yaml:"routeType" validate:"gte=0,lte=12"`
}

// GTFSConfig contains GTFS static feed configuration
type GTFSConfig struct {
	StaticURL string `yaml:"staticURL" validate:"omitempty"` // http(s) URL or local zip path
	AgencyID  string `yaml:"agency_id" validate:"omitempty"`
	CachePath string `yaml:"cachePath" validate:"omitempty"` // gob cache of the parsed feed
}

// GTFSRTConfig contains GTFS-Realtime feed configuration
type GTFSRTConfig struct {
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"omitempty"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// OutputConfig controls serialization of the transformed feed
type OutputConfig struct {
	Format  string `yaml:"format" validate:"omitempty,oneof=json xml"`
	Workers int    `yaml:"workers" validate:"gte=0"` // 0 = GOMAXPROCS
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,min=1,max=65535"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Feed represents a single named GTFS feed configuration
type Feed struct {
	Name   string       `yaml:"name" validate:"required"`
	GTFS   GTFSConfig   `yaml:"gtfs" validate:"required"`
	GTFSRT GTFSRTConfig `yaml:"gtfsrt"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Agency AgencyConfig `yaml:"agency" validate:"required"`
	GTFS   GTFSConfig   `yaml:"gtfs"`
	GTFSRT GTFSRTConfig `yaml:"gtfsrt"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Feeds  []Feed       `yaml:"feeds" validate:"dive"`
}
