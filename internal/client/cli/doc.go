// Package cli provides the interactive catalog admin command-line client.
//
// It wires configuration, the local session database, the API adapter, the
// state store and the services, then runs a REPL whose commands play the
// role of screens: login, the product list (search, category filter,
// paging), product detail, the create and edit forms and delete with
// confirmation.
//
// Protected commands go through the routing guard, which restores a saved
// session on first use and sends unauthenticated users to login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
