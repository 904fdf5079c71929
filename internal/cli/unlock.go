package cli

import (
	"context"

	"github.com/evkarev/cozydiary/internal/common"
)

// Unlock gates the session. On the very first run, when no credential
// exists yet, the entered password becomes the credential. Afterwards the
// password is verified against the stored hash.
func (a *App) Unlock(ctx context.Context) {
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	has, err := a.auth.HasCredential(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	if !has {
		if err := a.auth.SetCredential(ctx, password); err != nil {
			a.printf("error: %v\n", err)
			return
		}
		a.println("Welcome! Your diary password is set.")
	} else if !a.auth.VerifyCredential(ctx, password) {
		a.println("Invalid password!")
		return
	}

	if err := a.diary.Open(ctx); err != nil {
		a.printf("error: %v\n", err)
		return
	}

	a.unlocked = true
	a.println("Diary unlocked.")
}

// Lock drops the in-memory collection and requires a fresh unlock.
func (a *App) Lock() {
	a.diary.Close()
	a.unlocked = false
	a.println("Diary locked.")
}
