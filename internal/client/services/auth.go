// Package services orchestrates the catalog admin client: it is the only
// layer that calls the API adapter and turns outcomes into store actions.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/catalog-admin/internal/client/client"
	"github.com/dmitrijs2005/catalog-admin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/client/validation"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Login: validate the email, exchange it for a token and store both.
//   - Logout: forget the session and everything loaded under it.
//   - InitializeAuth: restore a session saved by an earlier run.
//   - TokenExpiry: report the token's exp claim when it is a JWT.
type AuthService interface {
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	InitializeAuth(ctx context.Context) error
	TokenExpiry() (time.Time, bool)
}

type authService struct {
	store  *store.Store
	client client.Client
	repo   metadata.Repository
	log    logging.Logger
}

// NewAuthService constructs an AuthService. repo is the durable session
// copy; nil means no local storage, and InitializeAuth does nothing.
func NewAuthService(st *store.Store, c client.Client, repo metadata.Repository, log logging.Logger) AuthService {
	return &authService{store: st, client: c, repo: repo, log: log}
}

// Login returns validation.FieldErrors for a malformed email without calling
// the API.
func (a *authService) Login(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, email)
	if err != nil {
		a.log.Info(ctx, "login failed", "email", email, "error", err)
		return fmt.Errorf("login error: %w", err)
	}

	apply(ctx, a.store, a.log, store.SetCredentials{Token: resp.Token, Email: email})
	a.log.Info(ctx, "logged in", "email", email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	apply(ctx, a.store, a.log, store.Logout{})
	apply(ctx, a.store, a.log, store.ResetCatalog{})
	apply(ctx, a.store, a.log, store.ResetCategories{})
	return nil
}

// InitializeAuth reads token and email from durable storage and restores the
// session when both are present.
func (a *authService) InitializeAuth(ctx context.Context) error {
	if a.repo == nil {
		return nil
	}

	token, err := a.repo.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	email, err := a.repo.Get(ctx, KeyEmail)
	if err != nil {
		return fmt.Errorf("read session email: %w", err)
	}

	st := apply(ctx, a.store, a.log, store.RestoreSession{Token: string(token), Email: string(email)})
	a.log.Debug(ctx, "session restored", "authenticated", st.Session.IsAuthenticated)
	return nil
}

// TokenExpiry decodes the current token without verifying it. Opaque
// tokens and JWTs without exp report false.
func (a *authService) TokenExpiry() (time.Time, bool) {
	token := a.store.Token()
	if token == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
