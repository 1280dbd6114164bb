package record

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/properties"
)

func TestNew_IdentityIsContentHash(t *testing.T) {
	rec, err := New("racecar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != properties.Hash("racecar") {
		t.Errorf("ID = %s, want content hash %s", rec.ID(), properties.Hash("racecar"))
	}
	if rec.Value() != "racecar" {
		t.Errorf("Value = %q", rec.Value())
	}
	if rec.CreatedAt().IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestNew_EmptyValueAllowed(t *testing.T) {
	rec, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Properties().Length() != 0 {
		t.Errorf("length = %d, want 0", rec.Properties().Length())
	}
}

func TestNew_ValueTooLarge(t *testing.T) {
	_, err := New(strings.Repeat("x", MaxValueSize+1))
	if err == nil {
		t.Fatal("expected error for oversized value")
	}
	if !errors.Is(err, domain.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestReconstruct_RoundTrip(t *testing.T) {
	rec, err := New("hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Reconstruct(rec.Value(), rec.Properties(), rec.CreatedAt())
	if got.ID() != rec.ID() {
		t.Errorf("reconstructed ID = %s, want %s", got.ID(), rec.ID())
	}
	if !got.CreatedAt().Equal(rec.CreatedAt()) {
		t.Errorf("reconstructed CreatedAt = %v, want %v", got.CreatedAt(), rec.CreatedAt())
	}
}
