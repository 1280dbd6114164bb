// Package record persists analyzed strings keyed by content hash.
package record

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kailas-cloud/strdex/internal/db"
	"github.com/kailas-cloud/strdex/internal/domain"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// store is the consumer interface for records (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/strings.Repository.
type Repo struct {
	store store
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a new record. Returns domain.ErrAlreadyExists when a record
// with the same content hash is present; the existing record is untouched.
func (r *Repo) Create(ctx context.Context, rec domrec.Record) error {
	key := recordKey(rec.ID())
	data, err := marshalRecord(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := r.store.SetNX(ctx, key, data); err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("setnx %s: %w", key, err)
	}
	return nil
}

// Get returns the record with the given content hash.
func (r *Repo) Get(ctx context.Context, id string) (domrec.Record, error) {
	key := recordKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domrec.Record{}, domain.ErrNotFound
		}
		return domrec.Record{}, fmt.Errorf("get %s: %w", key, err)
	}
	return unmarshalRecord(raw)
}

// Delete removes the record with the given content hash.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := recordKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns all stored records, oldest first (ID breaks ties) so filter
// responses are deterministic.
func (r *Repo) List(ctx context.Context) ([]domrec.Record, error) {
	keys, err := r.store.Scan(ctx, recordKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	recs := make([]domrec.Record, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.Get(ctx, key)
		if err != nil {
			// A key deleted between Scan and Get is not an error.
			if errors.Is(err, db.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		rec, err := unmarshalRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt().Equal(recs[j].CreatedAt()) {
			return recs[i].CreatedAt().Before(recs[j].CreatedAt())
		}
		return recs[i].ID() < recs[j].ID()
	})

	return recs, nil
}

func recordKey(id string) string {
	return fmt.Sprintf("%sstrings:%s", domain.KeyPrefix, id)
}
