package cli

import (
	"context"
	"errors"

	"github.com/evkarev/cozydiary/internal/common"
)

// ChangePassword replaces the unlock password after verifying the current
// one.
func (a *App) ChangePassword(ctx context.Context) {
	current, err := GetPassword("Current password", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(current)

	next, err := GetPassword("New password", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(next)

	if err := a.auth.ChangeCredential(ctx, current, next); err != nil {
		if errors.Is(err, common.ErrCredentialMismatch) {
			a.println("Current password is incorrect!")
			return
		}
		a.printf("error: %v\n", err)
		return
	}
	a.println("Password updated successfully!")
}
