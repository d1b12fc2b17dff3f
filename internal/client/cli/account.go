package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lexsearch/internal/client/api"
	"github.com/dmitrijs2005/lexsearch/internal/client/models"
)

// Whoami shows the current account. It refreshes the profile from the
// server when possible and falls back to the cached copy while offline.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.service.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			a.setMode(ModeOffline)
			if cached, ok := a.service.CachedUser(ctx); ok {
				printUser(cached, true)
				return nil
			}
			printlnFn("Server is unavailable and no cached profile exists.")
			return nil
		}
		return a.reportAPIError(err)
	}
	printUser(user, false)
	return nil
}

func printUser(u *models.User, cached bool) {
	suffix := ""
	if cached {
		suffix = " (cached)"
	}
	printlnFn(fmt.Sprintf("Email: %s%s", u.Email, suffix))
	if u.FullName != "" {
		printlnFn(fmt.Sprintf("Name: %s", u.FullName))
	}
	printlnFn(fmt.Sprintf("Tier: %s", u.Tier))
	printlnFn(fmt.Sprintf("Searches used: %d, remaining: %d", u.SearchCount, u.SearchesRemaining))
}

// Limit shows whether another search is allowed right now.
func (a *App) Limit(ctx context.Context) error {
	limit, err := a.service.CheckSearchLimit(ctx)
	if err != nil {
		return a.reportAPIError(err)
	}
	if limit.CanSearch {
		printlnFn(fmt.Sprintf("You can search: %d remaining on the %s tier.",
			limit.SearchesRemaining, limit.Tier))
	} else {
		printlnFn(fmt.Sprintf("Search limit reached: %s", limit.Message))
	}
	return nil
}

// Track records a search against the account's quota.
func (a *App) Track(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Query", os.Stdout)
	if err != nil {
		return err
	}

	collection, err := getSimpleText(a.reader, "Collection (optional)", os.Stdout)
	if err != nil {
		return err
	}

	resultCount, err := GetOptionalInt(a.reader, "Result count (default 0)", 0, os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.service.TrackSearch(ctx, query, collection, resultCount)
	if err != nil {
		return a.reportAPIError(err)
	}

	printlnFn(fmt.Sprintf("%s Total searches: %d, remaining: %d.",
		resp.Message, resp.SearchCount, resp.SearchesRemaining))
	return nil
}

// Stats prints the platform-wide usage summary.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.service.PlatformStats(ctx)
	if err != nil {
		return a.reportAPIError(err)
	}
	printlnFn(fmt.Sprintf("Users: %d total (%d free, %d pro)",
		stats.TotalUsers, stats.FreeUsers, stats.ProUsers))
	printlnFn(fmt.Sprintf("Searches: %d total, %d users at their limit",
		stats.TotalSearches, stats.UsersAtLimit))
	return nil
}

// Upgrade promotes an account to the pro tier.
func (a *App) Upgrade(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email of the account to upgrade", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.service.UpgradeUser(ctx, email)
	if err != nil {
		return a.reportAPIError(err)
	}
	printlnFn(msg)
	return nil
}
