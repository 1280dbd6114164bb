package strings

import (
	"context"

	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// Repository defines the storage contract for analyzed strings. Records are
// keyed by content hash.
type Repository interface {
	// Create stores a new record; domain.ErrAlreadyExists when the content
	// hash is taken.
	Create(ctx context.Context, rec domrec.Record) error
	Get(ctx context.Context, id string) (domrec.Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domrec.Record, error)
}
