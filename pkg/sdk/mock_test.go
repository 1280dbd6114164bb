package strdex

import (
	"context"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// --- stringsUseCase mock ---

type mockStringsUC struct {
	createFn func(ctx context.Context, value string) (domrec.Record, error)
	getFn    func(ctx context.Context, value string) (domrec.Record, error)
	deleteFn func(ctx context.Context, value string) error
	filterFn func(ctx context.Context, set filter.Set) ([]domrec.Record, error)
}

func (m *mockStringsUC) Create(ctx context.Context, value string) (domrec.Record, error) {
	return m.createFn(ctx, value)
}

func (m *mockStringsUC) Get(ctx context.Context, value string) (domrec.Record, error) {
	return m.getFn(ctx, value)
}

func (m *mockStringsUC) Delete(ctx context.Context, value string) error {
	return m.deleteFn(ctx, value)
}

func (m *mockStringsUC) Filter(ctx context.Context, set filter.Set) ([]domrec.Record, error) {
	return m.filterFn(ctx, set)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, query string) ([]domrec.Record, filter.Set, error)
}

func (m *mockSearchUC) Search(ctx context.Context, query string) ([]domrec.Record, filter.Set, error) {
	return m.searchFn(ctx, query)
}

// --- helpers ---

func testClient(stringsSvc stringsUseCase, searchSvc searchUseCase) *Client {
	return &Client{
		stringsSvc: stringsSvc,
		searchSvc:  searchSvc,
	}
}

func mustRecord(value string) domrec.Record {
	rec, err := domrec.New(value)
	if err != nil {
		panic(err)
	}
	return rec
}
