package search

import (
	"context"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// RecordFilter evaluates a predicate set against the stored records.
// Implemented by usecase/strings.Service.
type RecordFilter interface {
	Filter(ctx context.Context, set filter.Set) ([]domrec.Record, error)
}
