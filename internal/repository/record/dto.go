package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/strdex/internal/domain/properties"
	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// recordDTO is the stored JSON shape of an analyzed string. Properties are
// stored alongside the value so hydration never recomputes.
type recordDTO struct {
	Value              string         `json:"value"`
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	SHA256Hash         string         `json:"sha256_hash"`
	CharacterFrequency map[string]int `json:"character_frequency_map"`
	CreatedAt          time.Time      `json:"created_at"`
}

func marshalRecord(rec domrec.Record) ([]byte, error) {
	props := rec.Properties()

	freq := make(map[string]int, len(props.CharacterFrequency()))
	for r, n := range props.CharacterFrequency() {
		freq[string(r)] = n
	}

	dto := recordDTO{
		Value:              rec.Value(),
		Length:             props.Length(),
		IsPalindrome:       props.IsPalindrome(),
		UniqueCharacters:   props.UniqueCharacters(),
		WordCount:          props.WordCount(),
		SHA256Hash:         props.SHA256Hash(),
		CharacterFrequency: freq,
		CreatedAt:          rec.CreatedAt(),
	}
	return json.Marshal(dto) //nolint:wrapcheck // caller adds key context
}

func unmarshalRecord(data []byte) (domrec.Record, error) {
	var dto recordDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domrec.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}

	freq := make(map[rune]int, len(dto.CharacterFrequency))
	for s, n := range dto.CharacterFrequency {
		rs := []rune(s)
		if len(rs) == 0 {
			continue
		}
		freq[rs[0]] = n
	}

	props := properties.Reconstruct(
		dto.Length, dto.IsPalindrome, dto.UniqueCharacters, dto.WordCount,
		dto.SHA256Hash, freq,
	)
	return domrec.Reconstruct(dto.Value, props, dto.CreatedAt), nil
}
