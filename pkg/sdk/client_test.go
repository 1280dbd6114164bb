package strdex

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

func TestCreateString_ReturnsProperties(t *testing.T) {
	c := testClient(&mockStringsUC{
		createFn: func(_ context.Context, value string) (domrec.Record, error) {
			return mustRecord(value), nil
		},
	}, nil)

	got, err := c.CreateString(context.Background(), "racecar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsPalindrome {
		t.Error("expected IsPalindrome=true")
	}
	if got.Length != 7 || got.WordCount != 1 {
		t.Errorf("unexpected properties: %+v", got)
	}
	if got.ID != got.SHA256Hash {
		t.Errorf("ID %q does not match SHA256Hash %q", got.ID, got.SHA256Hash)
	}
	if got.CharacterFrequency["a"] != 2 {
		t.Errorf("frequency of a: got %d, want 2", got.CharacterFrequency["a"])
	}
}

func TestCreateString_Conflict(t *testing.T) {
	c := testClient(&mockStringsUC{
		createFn: func(_ context.Context, _ string) (domrec.Record, error) {
			return domrec.Record{}, ErrAlreadyExists
		},
	}, nil)

	_, err := c.CreateString(context.Background(), "dup")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGetString_NotFound(t *testing.T) {
	c := testClient(&mockStringsUC{
		getFn: func(_ context.Context, _ string) (domrec.Record, error) {
			return domrec.Record{}, ErrNotFound
		},
	}, nil)

	_, err := c.GetString(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListStrings_PassesFilters(t *testing.T) {
	var gotSet filter.Set
	c := testClient(&mockStringsUC{
		filterFn: func(_ context.Context, set filter.Set) ([]domrec.Record, error) {
			gotSet = set
			return []domrec.Record{mustRecord("level")}, nil
		},
	}, nil)

	pal := true
	minLen := 3
	out, err := c.ListStrings(context.Background(), Filters{
		IsPalindrome: &pal,
		MinLength:    &minLen,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Value != "level" {
		t.Errorf("unexpected result: %+v", out)
	}

	fields := gotSet.Fields()
	if fields["is_palindrome"] != true {
		t.Errorf("is_palindrome not passed: %v", fields)
	}
	if fields["min_length"] != 3 {
		t.Errorf("min_length not passed: %v", fields)
	}
}

func TestListStrings_MultiCharContains(t *testing.T) {
	c := testClient(&mockStringsUC{}, nil)

	_, err := c.ListStrings(context.Background(), Filters{ContainsCharacter: "ab"})
	if err == nil {
		t.Fatal("expected error for multi-character ContainsCharacter")
	}
}

func TestQuery_EchoesParsedFilters(t *testing.T) {
	c := testClient(nil, &mockSearchUC{
		searchFn: func(_ context.Context, _ string) ([]domrec.Record, filter.Set, error) {
			set := filter.NewSet().With(filter.IsPalindrome(true))
			return []domrec.Record{mustRecord("pop")}, set, nil
		},
	})

	res, err := c.Query(context.Background(), "palindromic strings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Strings) != 1 || res.Strings[0].Value != "pop" {
		t.Errorf("unexpected strings: %+v", res.Strings)
	}
	if res.ParsedFilters["is_palindrome"] != true {
		t.Errorf("unexpected parsed filters: %v", res.ParsedFilters)
	}
}

// TestClient_EndToEnd_Memory exercises the full wiring over the in-memory
// store.
func TestClient_EndToEnd_Memory(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer c.Close()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	for _, v := range []string{"racecar", "hello world", "pop"} {
		if _, err := c.CreateString(ctx, v); err != nil {
			t.Fatalf("create %q: %v", v, err)
		}
	}

	if _, err := c.CreateString(ctx, "racecar"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate create: expected ErrAlreadyExists, got %v", err)
	}

	got, err := c.GetString(ctx, "hello world")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.WordCount != 2 {
		t.Errorf("word count: got %d, want 2", got.WordCount)
	}

	pal := true
	matched, err := c.ListStrings(ctx, Filters{IsPalindrome: &pal})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("palindromes: got %d, want 2", len(matched))
	}

	res, err := c.Query(ctx, "strings longer than five characters")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res.Strings) != 2 {
		t.Errorf("query matches: got %d, want 2", len(res.Strings))
	}
	if res.ParsedFilters["min_length"] != 6 {
		t.Errorf("parsed min_length: got %v, want 6", res.ParsedFilters["min_length"])
	}

	if err := c.DeleteString(ctx, "pop"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.GetString(ctx, "pop"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: expected ErrNotFound, got %v", err)
	}

	health := c.Health(ctx)
	if health.Status != "ok" {
		t.Errorf("health: got %q, want ok", health.Status)
	}
}
