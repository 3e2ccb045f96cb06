package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/catalog-admin/internal/client/guard"
	"github.com/dmitrijs2005/catalog-admin/internal/client/services"
	"github.com/dmitrijs2005/catalog-admin/internal/client/validation"
)

// getSimpleText, getTextWithDefault, getLines and confirm are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getLines           = GetLines
	confirm            = Confirm
	waitEnter          = WaitEnter
)

// Login shows the login screen. An already authenticated user goes straight
// to the product list, as does a user who just logged in.
//
// Validation problems and API failures are printed; the returned error is
// the underlying one.
func (a *App) Login(ctx context.Context) error {
	if a.guard.LoginPage(ctx) == guard.RedirectCatalog {
		fmt.Fprintf(a.out, "Already logged in as %s.\n", a.store.Snapshot().Session.Email)
		return a.List(ctx)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email); err != nil {
		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			fmt.Fprintln(a.out, fe[validation.FieldEmail])
		} else {
			fmt.Fprintln(a.out, "Error:", services.UserMessage(err, services.MsgLogin))
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.store.Snapshot().Session.Email)
	return a.List(ctx)
}

// Logout forgets the session, the saved copy and all loaded data.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.catalog.Close()
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the session email and, for JWT tokens, when it expires.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	fmt.Fprintf(a.out, "Email: %s\n", a.store.Snapshot().Session.Email)
	if exp, ok := a.auth.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "Token expires: %s\n", exp.Local().Format(time.RFC1123))
	} else {
		fmt.Fprintln(a.out, "Token expires: unknown")
	}
	return nil
}
