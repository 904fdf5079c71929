package cli

import (
	"context"
	"strings"

	"github.com/evkarev/cozydiary/internal/models"
)

// printEntryLine renders the one-line listing form of an entry.
func (a *App) printEntryLine(index int, e models.DiaryEntry) {
	meta := e.Date.Format("2006-01-02")
	if e.Weather != "" {
		meta += " · " + e.Weather
	}
	if emoji := e.Mood.Emoji(); emoji != "" {
		meta += " " + emoji
	}
	a.printf("[%d] %s (%s)\n", index, e.Title, meta)
}

// List prints the whole collection, newest first.
func (a *App) List(ctx context.Context) {
	entries, err := a.diary.List(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	if len(entries) == 0 {
		a.println("The diary is empty.")
		return
	}

	for i, e := range entries {
		a.printEntryLine(i, e)
	}
}

// Show prints a single entry in full.
func (a *App) Show(ctx context.Context) {
	index, ok := a.readIndex(ctx, "Enter entry number to show")
	if !ok {
		return
	}

	entries, err := a.diary.List(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if index < 0 || index >= len(entries) {
		a.println("No such entry.")
		return
	}

	e := entries[index]
	a.printEntryLine(index, e)
	if len(e.Stickers) > 0 {
		a.println("Stickers:", strings.Join(e.Stickers, " "))
	}
	a.println("Theme:", e.Theme)
	a.println(e.Content)
}
