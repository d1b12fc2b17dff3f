package cli

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/lexsearch/internal/client/api"
	"github.com/dmitrijs2005/lexsearch/internal/client/config"
	"github.com/dmitrijs2005/lexsearch/internal/client/services"
	"github.com/dmitrijs2005/lexsearch/internal/client/session"
	"github.com/dmitrijs2005/lexsearch/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeUnknown Mode = "unknown"
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the transport, the session store and the auth service together
// and drives the interactive loop.
type App struct {
	config  *config.Config
	service services.AuthService
	log     logging.Logger
	reader  *bufio.Reader

	mu   sync.RWMutex
	mode Mode
}

// NewApp builds a ready-to-run application from config. If the session
// database cannot be opened the app still starts: the session degrades to an
// in-process no-op store, so nothing persists between runs but every command
// keeps working.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) *App {
	var storage session.Storage
	if db, err := session.OpenSQLite(ctx, cfg.SessionDBPath); err != nil {
		log.Warn(ctx, "session database unavailable, continuing without persistence", "error", err)
		storage = &session.NopStorage{}
	} else {
		storage = session.NewSQLiteStorage(db)
	}

	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, log)
	store := session.NewStore(storage, log)

	return &App{
		config:  cfg,
		service: services.NewAuthService(client, store),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		mode:    ModeUnknown,
	}
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(m Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = m
}

// StartHealthWatcher periodically pings the backend and flips the app
// between online and offline mode. It returns when ctx is cancelled.
func (a *App) StartHealthWatcher(ctx context.Context) {
	a.checkHealth(ctx)

	ticker := time.NewTicker(a.config.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.checkHealth(ctx)
		}
	}
}

func (a *App) checkHealth(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.service.Ping(reqCtx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// Run starts the health watcher and the interactive loop.
func (a *App) Run(ctx context.Context) error {
	go a.StartHealthWatcher(ctx)
	return a.runLoop(ctx)
}
