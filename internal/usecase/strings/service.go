// Package strings implements analyze-and-store CRUD plus structured
// filtering over the stored records.
package strings

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/strdex/internal/domain/properties"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// Service handles analyzed-string CRUD and filtering.
type Service struct {
	repo     Repository
	analyzed prometheus.Counter
}

// New creates a strings service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches a counter incremented per stored string.
func (s *Service) WithMetrics(analyzed prometheus.Counter) *Service {
	s.analyzed = analyzed
	return s
}

// Create analyzes value and stores the record. Creating the same value twice
// is a conflict; the stored record is untouched.
func (s *Service) Create(ctx context.Context, value string) (domrec.Record, error) {
	rec, err := domrec.New(value)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("analyze value: %w", err)
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return domrec.Record{}, fmt.Errorf("store record: %w", err)
	}

	if s.analyzed != nil {
		s.analyzed.Inc()
	}
	return rec, nil
}

// Get returns the record for the exact value.
func (s *Service) Get(ctx context.Context, value string) (domrec.Record, error) {
	rec, err := s.repo.Get(ctx, properties.Hash(value))
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// Delete removes the record for the exact value.
func (s *Service) Delete(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, properties.Hash(value)); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Filter returns all records matching every predicate in set. The empty set
// returns everything.
func (s *Service) Filter(ctx context.Context, set filter.Set) ([]domrec.Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	matched := make([]domrec.Record, 0, len(recs))
	for i := range recs {
		ok, err := set.Matches(recs[i].Properties())
		if err != nil {
			return nil, fmt.Errorf("evaluate predicates: %w", err)
		}
		if ok {
			matched = append(matched, recs[i])
		}
	}
	return matched, nil
}
