package strdex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/strdex/internal/db"
	dbMemory "github.com/kailas-cloud/strdex/internal/db/memory"
	dbRedis "github.com/kailas-cloud/strdex/internal/db/redis"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
	recordrepo "github.com/kailas-cloud/strdex/internal/repository/record"
	healthuc "github.com/kailas-cloud/strdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/strdex/internal/usecase/search"
	stringsuc "github.com/kailas-cloud/strdex/internal/usecase/strings"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type stringsUseCase interface {
	Create(ctx context.Context, value string) (domrec.Record, error)
	Get(ctx context.Context, value string) (domrec.Record, error)
	Delete(ctx context.Context, value string) error
	Filter(ctx context.Context, set filter.Set) ([]domrec.Record, error)
}

type searchUseCase interface {
	Search(ctx context.Context, query string) ([]domrec.Record, filter.Set, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the strdex SDK entry point.
type Client struct {
	store      db.Store
	stringsSvc stringsUseCase
	searchSvc  searchUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a strdex Client. The provided context is used for the initial
// readiness check when a remote store is configured.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{driver: "memory"}
	for _, o := range opts {
		o.apply(cfg)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("strdex: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("strdex: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("strdex: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, obs *observer) *Client {
	repo := recordrepo.New(store)
	stringsSvc := stringsuc.New(repo)
	searchSvc := searchuc.New(stringsSvc)
	healthSvc := healthuc.New(store)

	return &Client{
		store:      store,
		stringsSvc: stringsSvc,
		searchSvc:  searchSvc,
		healthSvc:  healthSvc,
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// CreateString analyzes value and stores the resulting record.
// Returns ErrAlreadyExists if the exact value is already stored.
func (c *Client) CreateString(ctx context.Context, value string) (_ AnalyzedString, err error) {
	start := time.Now()
	defer func() { c.obs.observe("create_string", start, err) }()

	rec, err := c.stringsSvc.Create(ctx, value)
	if err != nil {
		return AnalyzedString{}, fmt.Errorf("create string: %w", err)
	}
	return fromRecord(&rec), nil
}

// GetString returns the stored record for the exact value.
// Returns ErrNotFound if the value was never stored.
func (c *Client) GetString(ctx context.Context, value string) (_ AnalyzedString, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_string", start, err) }()

	rec, err := c.stringsSvc.Get(ctx, value)
	if err != nil {
		return AnalyzedString{}, fmt.Errorf("get string: %w", err)
	}
	return fromRecord(&rec), nil
}

// DeleteString removes the stored record for the exact value.
// Returns ErrNotFound if the value was never stored.
func (c *Client) DeleteString(ctx context.Context, value string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete_string", start, err) }()

	if err = c.stringsSvc.Delete(ctx, value); err != nil {
		return fmt.Errorf("delete string: %w", err)
	}
	return nil
}

// ListStrings returns all stored strings matching the filters. Zero-value
// Filters returns everything.
func (c *Client) ListStrings(ctx context.Context, f Filters) (_ []AnalyzedString, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list_strings", start, err) }()

	set, err := f.toSet()
	if err != nil {
		return nil, err
	}

	recs, err := c.stringsSvc.Filter(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("list strings: %w", err)
	}
	return fromRecords(recs), nil
}

// Query interprets a natural-language query and returns the matching strings.
// Interpretation never fails: a query no rule understands yields empty
// ParsedFilters and every stored string.
func (c *Client) Query(ctx context.Context, query string) (_ QueryResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("query", start, err) }()

	recs, set, err := c.searchSvc.Search(ctx, query)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query strings: %w", err)
	}
	return QueryResult{
		Strings:       fromRecords(recs),
		ParsedFilters: set.Fields(),
	}, nil
}
