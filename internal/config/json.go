package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/evkarev/cozydiary/internal/flagx"
	"github.com/evkarev/cozydiary/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds. Pointer fields distinguish "absent" from
// zero values so a sparse file only overrides what it mentions.
type JsonConfig struct {
	DatabasePath                   *string         `json:"database_path"`
	BcryptCost                     *int            `json:"bcrypt_cost"`
	WeatherAPIKey                  *string         `json:"weather_api_key"`
	WeatherLat                     *float64        `json:"weather_lat"`
	WeatherLon                     *float64        `json:"weather_lon"`
	WeatherTimeout                 *timex.Duration `json:"weather_timeout"`
	PreserveCreationMetadataOnEdit *bool           `json:"preserve_creation_metadata_on_edit"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, no JSON is loaded.
// Read or unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}
	applyJsonFile(cfg, jsonConfigFile)
}

func applyJsonFile(cfg *Config, path string) {
	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.BcryptCost != nil {
		cfg.BcryptCost = *jc.BcryptCost
	}
	if jc.WeatherAPIKey != nil {
		cfg.WeatherAPIKey = *jc.WeatherAPIKey
	}
	if jc.WeatherLat != nil {
		cfg.WeatherLat = *jc.WeatherLat
	}
	if jc.WeatherLon != nil {
		cfg.WeatherLon = *jc.WeatherLon
	}
	if jc.WeatherTimeout != nil {
		cfg.WeatherTimeout = time.Duration(jc.WeatherTimeout.Duration)
	}
	if jc.PreserveCreationMetadataOnEdit != nil {
		cfg.PreserveCreationMetadataOnEdit = *jc.PreserveCreationMetadataOnEdit
	}
}
