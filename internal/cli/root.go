package cli

import (
	"bufio"
	"context"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.isUnlocked() {
		return "unlocked"
	}
	return "locked"
}

// Root runs the read–eval–print loop. Until the diary is unlocked only the
// unlock command is dispatched; the entry commands become available after a
// successful unlock. The loop exits on scanner EOF or "exit"/"quit".
func (a *App) Root(ctx context.Context) {
	a.println("Cozy Diary (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	a.runREPL(ctx, scanner)
}

func (a *App) runREPL(ctx context.Context, scanner *bufio.Scanner) {
	for {
		a.printf("diary (%s)> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		if !a.isUnlocked() {
			switch cmd {
			case "help":
				a.println("Available commands: unlock, exit")
			case "unlock":
				a.Unlock(ctx)
			case "exit", "quit":
				a.println("Bye!")
				return
			default:
				a.println("The diary is locked. Type 'unlock' first.")
			}
			continue
		}

		switch cmd {
		case "help":
			a.println("Available commands: add, (l)ist, show, edit, delete, search, calendar, theme, passwd, reset, lock, exit")
		case "add":
			a.Add(ctx)
		case "l", "list":
			a.List(ctx)
		case "show":
			a.Show(ctx)
		case "edit":
			a.Edit(ctx)
		case "delete":
			a.Delete(ctx)
		case "search":
			a.Search(ctx)
		case "calendar":
			a.Calendar(ctx)
		case "theme":
			a.Theme(ctx)
		case "passwd":
			a.ChangePassword(ctx)
		case "reset":
			a.Reset(ctx)
		case "lock":
			a.Lock()
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}
	}
}
