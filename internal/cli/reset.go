package cli

import (
	"context"

	"github.com/evkarev/cozydiary/internal/dbx"
	"github.com/evkarev/cozydiary/internal/repositories/records"
)

// Reset wipes the whole diary: credential, entries, and preferences go in
// one transaction, so a failure cannot leave the store half-erased. The
// session locks afterwards.
func (a *App) Reset(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, "This erases ALL entries and the password. Type 'yes' to continue", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if answer != "yes" {
		a.println("Reset cancelled.")
		return
	}

	err = dbx.WithTx(ctx, a.database, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return records.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	a.diary.Close()
	a.unlocked = false
	a.println("Diary erased.")
}
