package cli

import (
	"context"
	"strconv"
)

// readIndex prompts for an entry number.
func (a *App) readIndex(ctx context.Context, prompt string) (int, bool) {
	input, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return 0, false
	}
	index, err := strconv.Atoi(input)
	if err != nil {
		a.println("Please enter an entry number, e.g. 0.")
		return 0, false
	}
	return index, true
}

// Edit replaces an entry in place with freshly prompted fields.
func (a *App) Edit(ctx context.Context) {
	index, ok := a.readIndex(ctx, "Enter entry number to edit")
	if !ok {
		return
	}

	draft, ok := a.readDraft(ctx)
	if !ok {
		return
	}

	if err := a.diary.Update(ctx, index, draft); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Entry updated.")
}

// Delete removes an entry by number.
func (a *App) Delete(ctx context.Context) {
	index, ok := a.readIndex(ctx, "Enter entry number to delete")
	if !ok {
		return
	}

	if err := a.diary.Delete(ctx, index); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Entry deleted.")
}
