// Package cli implements the interactive shell of the diary: the unlock
// gate, the entry commands, and the small amount of glue wiring services to
// the local database.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/evkarev/cozydiary/internal/config"
	"github.com/evkarev/cozydiary/internal/db"
	"github.com/evkarev/cozydiary/internal/logging"
	"github.com/evkarev/cozydiary/internal/repositories/records"
	"github.com/evkarev/cozydiary/internal/services"
	"github.com/evkarev/cozydiary/internal/weather"
)

// App holds the interactive session state. The diary stays locked until the
// unlock password is verified; before that only unlock and exit are
// available.
type App struct {
	config   *config.Config
	auth     *services.AuthService
	diary    *services.DiaryService
	records  records.Repository
	database *sql.DB
	log      logging.Logger

	reader   *bufio.Reader
	out      io.Writer
	unlocked bool
}

// NewApp opens the local database, wires the services and returns the app
// ready to Run.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	database, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := records.NewSQLiteRepository(database)

	var provider weather.Provider
	if cfg.WeatherAPIKey != "" {
		provider = weather.NewOpenWeatherClient(cfg.WeatherAPIKey, cfg.WeatherLat, cfg.WeatherLon, cfg.WeatherTimeout)
	} else {
		provider = weather.NewMockProvider()
	}

	auth := services.NewAuthService(repo, cfg.BcryptCost, log)
	diary := services.NewDiaryService(repo, provider, log,
		services.WithPreserveCreationMetadata(cfg.PreserveCreationMetadataOnEdit))

	return &App{
		config:   cfg,
		auth:     auth,
		diary:    diary,
		records:  repo,
		database: database,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.database.Close()
	a.Root(ctx)
}

func (a *App) isUnlocked() bool {
	return a.unlocked
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
