package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/config"
	"github.com/dmitrijs2005/catalog-admin/internal/client/guard"
	"github.com/dmitrijs2005/catalog-admin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/catalog-admin/internal/client/services"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/filex"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	db         *sql.DB
	store      *store.Store
	auth       services.AuthService
	catalog    *services.CatalogService
	categories *services.CategoryService
	guard      *guard.Guard
	log        logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp wires the application from c. A database that cannot be opened is
// logged and the session then lives in memory only.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	var (
		runner store.EffectRunner
		repo   metadata.Repository
	)
	db, err := openDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Warn(ctx, "local session storage unavailable", "path", c.DBPath, "error", err)
		db = nil
	} else {
		runner = services.NewSessionPersister(db)
		repo = metadata.NewSQLiteRepository(db)
	}

	st := store.New(runner)

	apiClient, err := client.NewRESTClient(c.APIBaseURL, st, client.WithTimeout(c.RequestTimeout))
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	a := &App{
		config:      c,
		db:          db,
		store:       st,
		log:         logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         &syncWriter{w: os.Stdout},
		interactive: isTerminal(int(os.Stdin.Fd())),
	}
	a.wire(apiClient, repo)
	return a, nil
}

func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}
	return client.InitDatabase(ctx, abs)
}

// wire builds the services on top of the store and api client.
func (a *App) wire(api client.Client, repo metadata.Repository) {
	a.auth = services.NewAuthService(a.store, api, repo, a.log)
	a.catalog = services.NewCatalogService(a.store, api, a.log,
		services.WithPageSize(a.config.PageSize),
		services.WithSearchDebounce(a.config.SearchDebounce),
		services.WithSearchListener(a.onSearched),
	)
	a.categories = services.NewCategoryService(a.store, api, a.log)
	a.guard = guard.New(a.store, a.auth, a.log)
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Catalog admin CLI (type 'help' for commands)")
	if a.guard.LoginPage(ctx) == guard.RedirectCatalog {
		_ = a.List(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out, a.interactive)
}

// Close stops pending work and releases the database.
func (a *App) Close() {
	a.catalog.Close()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Session.IsAuthenticated
}

func (a *App) getStatus() string {
	s := a.store.Snapshot()
	if !s.Session.IsAuthenticated {
		return "(guest)"
	}
	c := s.Catalog
	switch {
	case c.SearchMode():
		return fmt.Sprintf("(%s search %q)", s.Session.Email, c.SearchQuery)
	case c.SelectedCategory != "":
		return fmt.Sprintf("(%s %s p%d)", s.Session.Email, categoryLabel(s.Categories, c.SelectedCategory), c.CurrentPage)
	default:
		return fmt.Sprintf("(%s p%d)", s.Session.Email, c.CurrentPage)
	}
}

// requireAuth runs the guard for a protected command. Without a session the
// command is dropped and the login screen is shown instead.
func (a *App) requireAuth(ctx context.Context) bool {
	outcome := a.guard.RequireAuth(ctx, func() {
		fmt.Fprintln(a.out, "Loading...")
	})
	if outcome == guard.Proceed {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	_ = a.Login(ctx)
	return false
}

// syncWriter serializes writes from the REPL and the search debouncer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
