package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/catalog-admin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/dbx"
)

// Durable session keys in the metadata table.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

// SessionPersister runs session effects against the local database. Both
// keys are written or removed in one transaction.
type SessionPersister struct {
	db *sql.DB
}

func NewSessionPersister(db *sql.DB) *SessionPersister {
	return &SessionPersister{db: db}
}

func (p *SessionPersister) Run(ctx context.Context, e store.Effect) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		switch e.Kind {
		case store.PersistSession:
			if err := repo.Set(ctx, KeyToken, []byte(e.Token)); err != nil {
				return err
			}
			return repo.Set(ctx, KeyEmail, []byte(e.Email))
		case store.ClearSession:
			if err := repo.Delete(ctx, KeyToken); err != nil {
				return err
			}
			return repo.Delete(ctx, KeyEmail)
		default:
			return fmt.Errorf("unsupported effect %s", e.Kind)
		}
	})
}
