package cli

import (
	"context"
)

// Search prints entries whose title or content contains the query. The
// numbers shown are positions in the full collection, so they can be fed
// straight into edit and delete.
func (a *App) Search(ctx context.Context) {
	query, err := GetSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	results, err := a.diary.Search(ctx, query)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	if len(results) == 0 {
		a.println("Nothing found.")
		return
	}

	for _, r := range results {
		a.printEntryLine(r.Index, r.Entry)
	}
}

// Calendar prints the {title, date} projection consumed by calendar views.
func (a *App) Calendar(ctx context.Context) {
	events, err := a.diary.Calendar(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	if len(events) == 0 {
		a.println("The diary is empty.")
		return
	}

	for _, ev := range events {
		a.printf("%s  %s\n", ev.Date.Format("2006-01-02"), ev.Title)
	}
}
