package filter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/properties"
)

func mustMatch(t *testing.T, s Set, value string) bool {
	t.Helper()
	ok, err := s.Matches(properties.Compute(value))
	if err != nil {
		t.Fatalf("Matches(%q): %v", value, err)
	}
	return ok
}

func TestEmptySet_MatchesEverything(t *testing.T) {
	s := NewSet()
	for _, v := range []string{"", "racecar", "hello world"} {
		if !mustMatch(t, s, v) {
			t.Errorf("empty set did not match %q", v)
		}
	}
}

func TestSet_SinglePredicates(t *testing.T) {
	tests := []struct {
		name  string
		set   Set
		value string
		want  bool
	}{
		{"palindrome true matches", NewSet(IsPalindrome(true)), "racecar", true},
		{"palindrome true rejects", NewSet(IsPalindrome(true)), "hello", false},
		{"palindrome false matches", NewSet(IsPalindrome(false)), "hello", true},
		{"min length inclusive", NewSet(MinLength(5)), "hello", true},
		{"min length rejects", NewSet(MinLength(6)), "hello", false},
		{"max length inclusive", NewSet(MaxLength(5)), "hello", true},
		{"max length rejects", NewSet(MaxLength(4)), "hello", false},
		{"word count exact", NewSet(WordCount(2)), "hello world", true},
		{"word count rejects", NewSet(WordCount(1)), "hello world", false},
		{"contains character", NewSet(ContainsCharacter('e')), "hello", true},
		{"contains is case-sensitive", NewSet(ContainsCharacter('H')), "hello", false},
		{"contains whitespace", NewSet(ContainsCharacter(' ')), "a b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustMatch(t, tt.set, tt.value); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_Conjunction(t *testing.T) {
	s := NewSet(IsPalindrome(true), WordCount(1), MinLength(3))

	if !mustMatch(t, s, "racecar") {
		t.Error("expected match for racecar")
	}
	// Palindrome but two words.
	if mustMatch(t, s, "aa  aa") {
		t.Error("expected no match when one predicate fails")
	}
	// Single word, long enough, not a palindrome.
	if mustMatch(t, s, "hello") {
		t.Error("expected no match for non-palindrome")
	}
}

func TestSet_DegenerateRange_AlwaysFalse(t *testing.T) {
	s := NewSet(MinLength(10), MaxLength(5))
	for _, v := range []string{"", "short", "long enough string"} {
		if mustMatch(t, s, v) {
			t.Errorf("degenerate range matched %q", v)
		}
	}
}

func TestSet_FirstPredicatePerKindWins(t *testing.T) {
	s := NewSet(MinLength(11), MinLength(3))
	if got := len(s.Predicates()); got != 1 {
		t.Fatalf("expected 1 predicate, got %d", got)
	}
	if s.Predicates()[0].Int() != 11 {
		t.Errorf("expected first min_length=11 to win, got %d", s.Predicates()[0].Int())
	}

	s = s.With(MinLength(99))
	if s.Predicates()[0].Int() != 11 {
		t.Error("With overwrote an existing kind")
	}
}

func TestSet_UnknownKind(t *testing.T) {
	s := Set{predicates: []Predicate{{kind: Kind("regex_match")}}}
	_, err := s.Matches(properties.Compute("x"))
	if err == nil {
		t.Fatal("expected error for unknown predicate kind")
	}
	if !errors.Is(err, domain.ErrUnknownPredicate) {
		t.Errorf("expected ErrUnknownPredicate, got %v", err)
	}
}

func TestSet_Fields(t *testing.T) {
	s := NewSet(IsPalindrome(true), MinLength(11), ContainsCharacter('z'))
	want := map[string]any{
		"is_palindrome":      true,
		"min_length":         11,
		"contains_character": "z",
	}
	if !reflect.DeepEqual(s.Fields(), want) {
		t.Errorf("Fields() = %v, want %v", s.Fields(), want)
	}
}
