package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the diary CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite file holding all records.
//   - BcryptCost: cost factor of the credential hash.
//   - WeatherAPIKey: OpenWeather key; empty means the canned offline provider.
//   - WeatherLat/WeatherLon: coordinates for the weather lookup.
//   - WeatherTimeout: upper bound for one weather exchange.
//   - PreserveCreationMetadataOnEdit: keep the original date and weather
//     snapshot when an entry is edited instead of re-stamping them.
type Config struct {
	DatabasePath                   string
	BcryptCost                     int
	WeatherAPIKey                  string
	WeatherLat                     float64
	WeatherLon                     float64
	WeatherTimeout                 time.Duration
	PreserveCreationMetadataOnEdit bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "diary.db"
	c.BcryptCost = bcrypt.DefaultCost
	c.WeatherTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
