// Package client contains client-side building blocks for the catalog admin CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     auth, products and categories.
//  2. A concrete REST implementation (see RESTClient) that attaches the
//     session token as a bearer credential, tags each request with an
//     X-Request-ID, and maps every non-2xx response or transport failure to
//     an *APIError.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failure is an *APIError. It also matches the sentinels ErrUnavailable,
// ErrUnauthorized and ErrNotFound with errors.Is, so callers rarely need to
// look at status codes.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
