package chi

import (
	"time"

	domrec "github.com/kailas-cloud/strdex/internal/domain/record"
)

// CreateStringRequest is the POST /strings body. Value is a pointer so a
// missing field is distinguishable from an explicit empty string.
type CreateStringRequest struct {
	Value *string `json:"value"`
}

// StringProperties mirrors the computed properties on the wire.
type StringProperties struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// StringResponse is a single analyzed-string record.
type StringResponse struct {
	ID         string           `json:"id"`
	Value      string           `json:"value"`
	Properties StringProperties `json:"properties"`
	CreatedAt  time.Time        `json:"created_at"`
}

// StringListResponse is the GET /strings envelope.
type StringListResponse struct {
	Data           []StringResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

// InterpretedQuery echoes how a natural-language query was understood.
type InterpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// NaturalLanguageResponse is the natural-language filter envelope.
type NaturalLanguageResponse struct {
	Data             []StringResponse `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// HealthResponse is the GET /health envelope.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func recordToResponse(rec *domrec.Record) StringResponse {
	props := rec.Properties()

	freq := make(map[string]int, len(props.CharacterFrequency()))
	for r, n := range props.CharacterFrequency() {
		freq[string(r)] = n
	}

	return StringResponse{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: StringProperties{
			Length:                props.Length(),
			IsPalindrome:          props.IsPalindrome(),
			UniqueCharacters:      props.UniqueCharacters(),
			WordCount:             props.WordCount(),
			SHA256Hash:            props.SHA256Hash(),
			CharacterFrequencyMap: freq,
		},
		CreatedAt: rec.CreatedAt().UTC(),
	}
}

func recordsToResponses(recs []domrec.Record) []StringResponse {
	out := make([]StringResponse, len(recs))
	for i := range recs {
		out[i] = recordToResponse(&recs[i])
	}
	return out
}
