// Package guard decides whether a screen may be shown for the current
// session. Authentication is resolved once per process from durable storage
// before the first decision.
package guard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
)

// Outcome is a routing decision.
type Outcome int

const (
	// Proceed renders the requested screen.
	Proceed Outcome = iota
	// RedirectLogin sends an unauthenticated user to the login screen.
	RedirectLogin
	// RedirectCatalog sends an authenticated user away from the login screen.
	RedirectCatalog
)

func (o Outcome) String() string {
	switch o {
	case Proceed:
		return "proceed"
	case RedirectLogin:
		return "redirect-login"
	case RedirectCatalog:
		return "redirect-catalog"
	default:
		return "unknown"
	}
}

// Initializer restores a saved session.
type Initializer interface {
	InitializeAuth(ctx context.Context) error
}

// Guard gates protected screens.
type Guard struct {
	store *store.Store
	init  Initializer
	log   logging.Logger

	mu       sync.Mutex
	resolved bool
}

func New(st *store.Store, init Initializer, log logging.Logger) *Guard {
	return &Guard{store: st, init: init, log: log}
}

// Resolved reports whether the saved session has been read.
func (g *Guard) Resolved() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolved
}

// RequireAuth resolves authentication if needed, calling onLoading (may be
// nil) while it does, and returns Proceed or RedirectLogin.
func (g *Guard) RequireAuth(ctx context.Context, onLoading func()) Outcome {
	g.resolve(ctx, onLoading)
	if g.store.Snapshot().Session.IsAuthenticated {
		return Proceed
	}
	return RedirectLogin
}

// LoginPage returns RedirectCatalog for an authenticated user and Proceed
// otherwise.
func (g *Guard) LoginPage(ctx context.Context) Outcome {
	g.resolve(ctx, nil)
	if g.store.Snapshot().Session.IsAuthenticated {
		return RedirectCatalog
	}
	return Proceed
}

// resolve runs the initializer at most once. A failed read counts as
// resolved with no session; a cancelled context leaves it unresolved.
func (g *Guard) resolve(ctx context.Context, onLoading func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolved {
		return
	}
	if onLoading != nil {
		onLoading()
	}

	if err := g.init.InitializeAuth(ctx); err != nil {
		if ctx.Err() != nil {
			g.log.Debug(ctx, "auth initialization interrupted", "error", err)
			return
		}
		g.log.Warn(ctx, "auth initialization failed", "error", err)
	}
	g.resolved = true
}
