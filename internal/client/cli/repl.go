package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/lexsearch/internal/client/api"
	"github.com/dmitrijs2005/lexsearch/internal/client/services"
)

// printlnFn is a test seam for output assertions.
var printlnFn = fmt.Println

// executor is the subset of App the loop dispatches to. It exists so the
// loop can be tested against a stub.
type executor interface {
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Limit(ctx context.Context) error
	Track(ctx context.Context) error
	Stats(ctx context.Context) error
	Upgrade(ctx context.Context) error
}

// statusLine summarizes the session for the prompt: the account the token
// belongs to, the connectivity mode, and whether the token has expired.
func (a *App) statusLine(ctx context.Context) string {
	who := "anonymous"
	expired := ""

	if token, ok := a.service.Token(ctx); ok {
		if sub, err := api.TokenSubject(token); err == nil {
			who = sub
		} else {
			who = "authenticated"
		}
		if exp, err := api.TokenExpiry(token); err == nil && exp.Before(time.Now()) {
			expired = ", token expired"
		}
	}

	return fmt.Sprintf("[%s, %s%s]", who, a.Mode(), expired)
}

func (a *App) runLoop(ctx context.Context) error {
	return runLoop(ctx, a, a.statusLine, func() (string, error) {
		return GetSimpleText(a.reader, "", io.Discard)
	})
}

// runLoop dispatches commands until the user quits or input ends. Command
// errors are printed, not fatal: only input errors stop the loop.
func runLoop(ctx context.Context, exec executor, status func(context.Context) string, readLine func() (string, error)) error {
	printlnFn("Type 'help' to list commands.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printlnFn(fmt.Sprintf("%s enter command:", status(ctx)))

		line, err := readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var cmdErr error
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "register":
			cmdErr = exec.Register(ctx)
		case "login":
			cmdErr = exec.Login(ctx)
		case "logout":
			cmdErr = exec.Logout(ctx)
		case "whoami":
			cmdErr = exec.Whoami(ctx)
		case "limit":
			cmdErr = exec.Limit(ctx)
		case "track":
			cmdErr = exec.Track(ctx)
		case "stats":
			cmdErr = exec.Stats(ctx)
		case "upgrade":
			cmdErr = exec.Upgrade(ctx)
		case "help":
			printHelp()
		case "exit", "quit":
			printlnFn("Bye!")
			return nil
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s", line))
		}

		if cmdErr != nil {
			if errors.Is(cmdErr, services.ErrNotAuthenticated) {
				printlnFn("Please login first.")
				continue
			}
			printlnFn(fmt.Sprintf("Error: %s", cmdErr))
		}
	}
}

func printHelp() {
	printlnFn("Commands:")
	printlnFn("  register  create an account and start a session")
	printlnFn("  login     authenticate and start a session")
	printlnFn("  whoami    show the current account")
	printlnFn("  limit     check whether another search is allowed")
	printlnFn("  track     record a search against the quota")
	printlnFn("  stats     platform-wide usage summary")
	printlnFn("  upgrade   switch an account to the pro tier")
	printlnFn("  logout    clear the stored session")
	printlnFn("  exit      leave")
}
