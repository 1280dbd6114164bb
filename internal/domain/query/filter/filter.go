// Package filter defines the structured predicate set and the engine that
// evaluates it against computed string properties.
package filter

import (
	"fmt"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/properties"
)

// Kind enumerates the predicate kinds the engine evaluates.
type Kind string

const (
	// KindIsPalindrome matches records whose palindrome flag equals the value.
	KindIsPalindrome Kind = "is_palindrome"
	// KindMinLength matches records with length >= the value.
	KindMinLength Kind = "min_length"
	// KindMaxLength matches records with length <= the value.
	KindMaxLength Kind = "max_length"
	// KindWordCount matches records with exactly the given word count.
	KindWordCount Kind = "word_count"
	// KindContainsCharacter matches records containing the character at least
	// once (case-sensitive).
	KindContainsCharacter Kind = "contains_character"
)

// Predicate is a single filter condition (immutable).
type Predicate struct {
	kind   Kind
	flag   bool
	number int
	char   rune
}

// IsPalindrome creates an is_palindrome predicate.
func IsPalindrome(v bool) Predicate { return Predicate{kind: KindIsPalindrome, flag: v} }

// MinLength creates a min_length predicate.
func MinLength(n int) Predicate { return Predicate{kind: KindMinLength, number: n} }

// MaxLength creates a max_length predicate.
func MaxLength(n int) Predicate { return Predicate{kind: KindMaxLength, number: n} }

// WordCount creates a word_count predicate.
func WordCount(n int) Predicate { return Predicate{kind: KindWordCount, number: n} }

// ContainsCharacter creates a contains_character predicate.
func ContainsCharacter(c rune) Predicate { return Predicate{kind: KindContainsCharacter, char: c} }

// Kind returns the predicate kind.
func (p Predicate) Kind() Kind { return p.kind }

// Bool returns the boolean operand (is_palindrome).
func (p Predicate) Bool() bool { return p.flag }

// Int returns the numeric operand (min_length, max_length, word_count).
func (p Predicate) Int() int { return p.number }

// Char returns the character operand (contains_character).
func (p Predicate) Char() rune { return p.char }

// Set is a conjunction of predicates, at most one per kind. The empty set
// matches every record. A set combining min_length > max_length is valid and
// simply matches nothing.
type Set struct {
	predicates []Predicate
}

// NewSet builds a Set from predicates in order, keeping the first predicate
// of each kind and dropping later duplicates.
func NewSet(predicates ...Predicate) Set {
	var s Set
	for _, p := range predicates {
		s = s.With(p)
	}
	return s
}

// With returns a set extended by p. If a predicate of the same kind is
// already present the set is returned unchanged (first one wins).
func (s Set) With(p Predicate) Set {
	if s.Has(p.kind) {
		return s
	}
	out := make([]Predicate, len(s.predicates), len(s.predicates)+1)
	copy(out, s.predicates)
	return Set{predicates: append(out, p)}
}

// Has reports whether the set contains a predicate of the given kind.
func (s Set) Has(kind Kind) bool {
	for _, p := range s.predicates {
		if p.kind == kind {
			return true
		}
	}
	return false
}

// Predicates returns the predicates in insertion order.
func (s Set) Predicates() []Predicate { return s.predicates }

// IsEmpty reports whether the set has no predicates.
func (s Set) IsEmpty() bool { return len(s.predicates) == 0 }

// Matches evaluates the conjunction against props: true iff every predicate
// is satisfied. A predicate of an unknown kind yields ErrUnknownPredicate;
// that cannot happen for sets built through the package constructors.
func (s Set) Matches(props properties.Properties) (bool, error) {
	for _, p := range s.predicates {
		ok, err := p.matches(props)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (p Predicate) matches(props properties.Properties) (bool, error) {
	switch p.kind {
	case KindIsPalindrome:
		return props.IsPalindrome() == p.flag, nil
	case KindMinLength:
		return props.Length() >= p.number, nil
	case KindMaxLength:
		return props.Length() <= p.number, nil
	case KindWordCount:
		return props.WordCount() == p.number, nil
	case KindContainsCharacter:
		return props.FrequencyOf(p.char) >= 1, nil
	default:
		return false, fmt.Errorf("%q: %w", p.kind, domain.ErrUnknownPredicate)
	}
}

// Fields returns the set as a plain map for response echoes
// (filters_applied / parsed_filters).
func (s Set) Fields() map[string]any {
	out := make(map[string]any, len(s.predicates))
	for _, p := range s.predicates {
		switch p.kind {
		case KindIsPalindrome:
			out[string(p.kind)] = p.flag
		case KindContainsCharacter:
			out[string(p.kind)] = string(p.char)
		default:
			out[string(p.kind)] = p.number
		}
	}
	return out
}
