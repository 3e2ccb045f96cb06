package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catalog-admin/internal/client/store"
	"github.com/dmitrijs2005/catalog-admin/internal/logging"
)

// apply dispatches a and logs effect failures. The state change itself
// always happens; only the durable copy can lag behind.
func apply(ctx context.Context, st *store.Store, log logging.Logger, a store.Action) store.State {
	next, err := st.Dispatch(ctx, a)
	if err != nil {
		log.Warn(ctx, "state effect failed", "action", fmt.Sprintf("%T", a), "error", err)
	}
	return next
}
