package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/kailas-cloud/strdex/internal/db"
)

func TestSetGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get = %q, want %q", got, "v1")
	}
}

func TestGet_Missing(t *testing.T) {
	s := NewStore()
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetNX_Conflict(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.SetNX(ctx, "k", []byte("first")); err != nil {
		t.Fatalf("first SetNX: %v", err)
	}
	err := s.SetNX(ctx, "k", []byte("second"))
	if !errors.Is(err, db.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}

	// Original value is unchanged.
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("value = %q, want %q", got, "first")
	}
}

func TestSetNX_ConcurrentSameKey(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.SetNX(ctx, "contended", []byte("v"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, db.ErrKeyExists) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("exactly one SetNX must win, got %d", succeeded)
	}
}

func TestDelExists(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v"))
	ok, err := s.Exists(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Exists = (%v, %v), want (true, nil)", ok, err)
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, err = s.Exists(ctx, "k")
	if err != nil || ok {
		t.Fatalf("Exists after Del = (%v, %v), want (false, nil)", ok, err)
	}

	// Deleting an absent key is not an error.
	if err := s.Del(ctx, "k"); err != nil {
		t.Errorf("Del absent key: %v", err)
	}
}

func TestScan(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.Set(ctx, "strdex:strings:a", []byte("1"))
	_ = s.Set(ctx, "strdex:strings:b", []byte("2"))
	_ = s.Set(ctx, "other:c", []byte("3"))

	keys, err := s.Scan(ctx, "strdex:strings:*")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	sort.Strings(keys)
	want := []string{"strdex:strings:a", "strdex:strings:b"}
	if len(keys) != 2 || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("Scan = %v, want %v", keys, want)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("abc"))
	got, _ := s.Get(ctx, "k")
	got[0] = 'z'

	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through Get result: %q", again)
	}
}
