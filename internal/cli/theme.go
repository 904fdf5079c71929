package cli

import (
	"context"

	"github.com/evkarev/cozydiary/internal/models"
	"github.com/evkarev/cozydiary/internal/repositories/records"
)

// Theme shows and changes the application-wide visual theme. The preference
// is stored as its own record, independent of the entry collection.
func (a *App) Theme(ctx context.Context) {
	current, err := a.records.Get(ctx, records.AppThemeRecord)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if len(current) == 0 {
		current = []byte(models.DefaultTheme)
	}
	a.println("Current theme:", string(current))

	next, err := GetSimpleText(a.reader, "New theme (empty to keep)", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if next == "" {
		return
	}

	if err := a.records.Set(ctx, records.AppThemeRecord, []byte(next)); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Theme changed to", next)
}
