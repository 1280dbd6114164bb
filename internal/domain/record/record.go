// Package record defines the analyzed-string aggregate.
package record

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/properties"
)

// MaxValueSize is the maximum input value size in bytes.
const MaxValueSize = 163840 // 160KB

// Record is an analyzed string (immutable value object). Its identity is the
// content hash of the value: two creations of the same text map to the same
// record.
type Record struct {
	value     string
	props     properties.Properties
	createdAt time.Time
}

// New analyzes value and creates a Record stamped with the current time.
// The empty string is a valid value.
func New(value string) (Record, error) {
	if len(value) > MaxValueSize {
		return Record{}, fmt.Errorf("value too large (max %d bytes): %w", MaxValueSize, domain.ErrInvalidValue)
	}
	return Record{
		value:     value,
		props:     properties.Compute(value),
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct creates a Record from stored fields without validation or
// recomputation (storage hydration).
func Reconstruct(value string, props properties.Properties, createdAt time.Time) Record {
	return Record{value: value, props: props, createdAt: createdAt}
}

// ID returns the record identity: the content hash of the value.
func (r *Record) ID() string { return r.props.SHA256Hash() }

// Value returns the original text.
func (r *Record) Value() string { return r.value }

// Properties returns the computed properties.
func (r *Record) Properties() properties.Properties { return r.props }

// CreatedAt returns the creation timestamp (set once).
func (r *Record) CreatedAt() time.Time { return r.createdAt }
