package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lexsearch/internal/client/api"
	"github.com/dmitrijs2005/lexsearch/internal/common"
)

// test seams
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the new account's details and creates it. On success
// the session is already persisted by the service, so the user is logged in
// immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.service.Register(ctx, email, string(password), fullName)
	if err != nil {
		return a.reportAPIError(err)
	}

	printlnFn(fmt.Sprintf("Welcome, %s! You are on the %s tier with %d searches remaining.",
		user.Email, user.Tier, user.SearchesRemaining))
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.service.Login(ctx, email, string(password))
	if err != nil {
		return a.reportAPIError(err)
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s tier, %d searches remaining).",
		user.Email, user.Tier, user.SearchesRemaining))
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// reportAPIError turns transport and server errors into user-facing
// messages. Anything it does not recognize is returned unchanged.
func (a *App) reportAPIError(err error) error {
	if errors.Is(err, api.ErrUnavailable) {
		a.setMode(ModeOffline)
		printlnFn("Server is unavailable, please try again later.")
		return nil
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		printlnFn(fmt.Sprintf("Error: %s", apiErr.Message))
		return nil
	}
	return err
}
