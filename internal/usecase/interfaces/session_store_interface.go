package interfaces

import (
	"context"
	"time"

	"beneficios_saude/internal/domain/entities"
)

// ISessionStore keeps live sessions. Get returns a zero-value Session when
// the id is unknown or expired.
type ISessionStore interface {
	Save(ctx context.Context, s entities.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
