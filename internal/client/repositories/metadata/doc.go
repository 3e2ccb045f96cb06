// Package metadata persists small pieces of client state (the session token
// and email) in the local SQLite database, playing the role a browser's
// localStorage plays for a web client.
//
// Typical Usage
//
//	repo := metadata.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "token", []byte(token))
//	v, _ := repo.Get(ctx, "token") // nil when absent
package metadata
