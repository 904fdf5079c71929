package cli

import (
	"context"
	"strings"

	"github.com/evkarev/cozydiary/internal/models"
)

// readDraft prompts for the entry fields shared by add and edit.
func (a *App) readDraft(ctx context.Context) (models.Draft, bool) {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return models.Draft{}, false
	}

	content, err := GetMultiline(a.reader, "Enter your entry", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return models.Draft{}, false
	}

	moodInput, err := GetSimpleText(a.reader, "Mood (happy/sad/excited/tired, empty for none)", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return models.Draft{}, false
	}
	mood, err := models.ParseMood(moodInput)
	if err != nil {
		a.printf("error: %v\n", err)
		return models.Draft{}, false
	}

	stickersInput, err := GetSimpleText(a.reader, "Stickers (space separated, empty for none)", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return models.Draft{}, false
	}

	theme, err := GetSimpleText(a.reader, "Theme (empty for default)", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return models.Draft{}, false
	}

	return models.Draft{
		Title:    title,
		Content:  content,
		Mood:     mood,
		Stickers: strings.Fields(stickersInput),
		Theme:    theme,
	}, true
}

// Add creates a new entry from prompted fields.
func (a *App) Add(ctx context.Context) {
	draft, ok := a.readDraft(ctx)
	if !ok {
		return
	}

	if _, err := a.diary.Create(ctx, draft); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Entry saved.")
}
