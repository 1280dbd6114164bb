// Package search serves natural-language filter queries: interpret the query
// into a predicate set, then evaluate it over the store.
package search

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	"github.com/kailas-cloud/strdex/internal/domain/query/nlq"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
	"github.com/kailas-cloud/strdex/internal/logger"
)

// Service handles natural-language queries.
type Service struct {
	records RecordFilter
	queries *prometheus.CounterVec
}

// New creates a search service.
func New(records RecordFilter) *Service {
	return &Service{records: records}
}

// WithMetrics attaches a per-outcome query counter (labels: outcome).
func (s *Service) WithMetrics(queries *prometheus.CounterVec) *Service {
	s.queries = queries
	return s
}

// Search interprets query and returns the matching records together with the
// predicate set that was derived. Interpretation never fails: a query that
// triggers no rule yields the empty set and therefore every stored record.
func (s *Service) Search(ctx context.Context, query string) ([]domrec.Record, filter.Set, error) {
	set := nlq.Interpret(query)

	outcome := "matched"
	if set.IsEmpty() {
		outcome = "unmatched"
		// Documented fallback, not an error: surfaced in the response via the
		// empty parsed_filters echo.
		logger.FromContext(ctx).Debug("no interpretation rules matched",
			zap.String("query", query),
		)
	}
	if s.queries != nil {
		s.queries.WithLabelValues(outcome).Inc()
	}

	recs, err := s.records.Filter(ctx, set)
	if err != nil {
		return nil, filter.Set{}, fmt.Errorf("filter records: %w", err)
	}
	return recs, set, nil
}
