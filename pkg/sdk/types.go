package strdex

import (
	"errors"
	"time"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// AnalyzedString is a stored string together with its computed properties.
type AnalyzedString struct {
	ID                 string
	Value              string
	Length             int
	IsPalindrome       bool
	UniqueCharacters   int
	WordCount          int
	SHA256Hash         string
	CharacterFrequency map[string]int
	CreatedAt          time.Time
}

// Filters selects stored strings by their computed properties. Nil fields are
// not applied; all set fields must match.
type Filters struct {
	IsPalindrome      *bool
	MinLength         *int
	MaxLength         *int
	WordCount         *int
	ContainsCharacter string // exactly one character when set
}

// QueryResult is the outcome of a natural-language query.
type QueryResult struct {
	Strings []AnalyzedString
	// ParsedFilters echoes how the query was interpreted. Empty when no
	// interpretation rule matched (in which case Strings holds every record).
	ParsedFilters map[string]any
}

func (f Filters) toSet() (filter.Set, error) {
	set := filter.NewSet()

	if f.IsPalindrome != nil {
		set = set.With(filter.IsPalindrome(*f.IsPalindrome))
	}
	if f.MinLength != nil {
		set = set.With(filter.MinLength(*f.MinLength))
	}
	if f.MaxLength != nil {
		set = set.With(filter.MaxLength(*f.MaxLength))
	}
	if f.WordCount != nil {
		set = set.With(filter.WordCount(*f.WordCount))
	}
	if f.ContainsCharacter != "" {
		rs := []rune(f.ContainsCharacter)
		if len(rs) != 1 {
			return filter.Set{}, errors.New("strdex: ContainsCharacter must be a single character")
		}
		set = set.With(filter.ContainsCharacter(rs[0]))
	}

	return set, nil
}

func fromRecord(rec *domrec.Record) AnalyzedString {
	props := rec.Properties()

	freq := make(map[string]int, len(props.CharacterFrequency()))
	for r, n := range props.CharacterFrequency() {
		freq[string(r)] = n
	}

	return AnalyzedString{
		ID:                 rec.ID(),
		Value:              rec.Value(),
		Length:             props.Length(),
		IsPalindrome:       props.IsPalindrome(),
		UniqueCharacters:   props.UniqueCharacters(),
		WordCount:          props.WordCount(),
		SHA256Hash:         props.SHA256Hash(),
		CharacterFrequency: freq,
		CreatedAt:          rec.CreatedAt(),
	}
}

func fromRecords(recs []domrec.Record) []AnalyzedString {
	out := make([]AnalyzedString, len(recs))
	for i := range recs {
		out[i] = fromRecord(&recs[i])
	}
	return out
}
