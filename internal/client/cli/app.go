// Package cli implements the interactive admin console built on the session
// service and the router.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/JackeyLee233/BlogProject/internal/client/api"
	"github.com/JackeyLee233/BlogProject/internal/client/config"
	sessionrepo "github.com/JackeyLee233/BlogProject/internal/client/repositories/session"
	"github.com/JackeyLee233/BlogProject/internal/client/router"
	"github.com/JackeyLee233/BlogProject/internal/client/services"
	"github.com/JackeyLee233/BlogProject/internal/client/ui"
	"github.com/JackeyLee233/BlogProject/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session *services.Session
	router  *router.Router
	db      *sql.DB
	reader  *bufio.Reader
	log     logging.Logger
}

// NewApp wires the console: session database, repository, guard, router,
// transport, and session service. The session is hydrated from storage, and
// an initial navigation to the dashboard is requested; the guard bounces it
// to the login view when no credential is persisted.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := sessionrepo.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	repo := sessionrepo.NewSQLiteRepository(db)
	guard := router.NewGuard(repo)
	rt := router.New(guard, router.DefaultRoutes(), log)
	notifier := ui.NewPTermNotifier()

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, repo, rt, notifier,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
		api.WithLoginPath(router.LoginPath),
	)

	sess, err := services.NewSession(ctx, apiClient, repo, rt, notifier, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	rt.Navigate(router.DashboardPath)

	return &App{
		config:  cfg,
		session: sess,
		router:  rt,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}
