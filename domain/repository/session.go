package repository

import (
	"context"

	"saved-hub/domain/model"
)

// ISessionStore persists SessionState keyed by an opaque session id. The
// transport (signed cookie) only ever carries the id, never the state itself.
type ISessionStore interface {
	// Get returns the stored state, or nil when the session is unknown or expired.
	Get(ctx context.Context, sid string) (*model.SessionState, error)
	Save(ctx context.Context, sid string, state *model.SessionState) error
	Delete(ctx context.Context, sid string) error
}
