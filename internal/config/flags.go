package config

import (
	"flag"
	"os"

	"github.com/evkarev/cozydiary/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file
//	-k string   OpenWeather API key
//	-p          preserve creation date/weather when editing an entry
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.WeatherAPIKey, "k", cfg.WeatherAPIKey, "OpenWeather API key")
	fs.BoolVar(&cfg.PreserveCreationMetadataOnEdit, "p", cfg.PreserveCreationMetadataOnEdit,
		"preserve creation date/weather when editing an entry")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
