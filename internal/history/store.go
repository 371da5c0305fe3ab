package history

import (
	"context"
	"fmt"

	"github.com/roach88/unitconv/internal/units"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// ValidBackends lists the accepted backend names.
var ValidBackends = []string{BackendMemory, BackendSQLite}

// Record is one saved conversion. Records are values and never change
// once appended.
type Record struct {
	Seq        int64          `json:"seq"`
	Category   units.Category `json:"category"`
	InputValue float64        `json:"input_value"`
	FromUnit   units.Unit     `json:"from_unit"`
	Result     float64        `json:"result"`
	ToUnit     units.Unit     `json:"to_unit"`
}

// NewRecord builds an unsequenced record from a conversion.
func NewRecord(c units.Conversion) Record {
	return Record{
		Category:   c.Category,
		InputValue: c.Value,
		FromUnit:   c.From,
		Result:     c.Result,
		ToUnit:     c.To,
	}
}

// Display renders the record as a history line, e.g. "1.0 Meter → 3.2808 Foot".
func (r Record) Display() string {
	return units.FormatResult(r.Category, r.InputValue, r.FromUnit, r.Result, r.ToUnit)
}

// Store is an append-only, ordered history of records.
type Store interface {
	// Append stores r at the end of the history and returns it with Seq set.
	// Any Seq already on r is ignored.
	Append(ctx context.Context, r Record) (Record, error)

	// List returns all records in insertion order.
	// Returns an empty slice (not nil) when nothing has been saved.
	List(ctx context.Context) ([]Record, error)

	// Len returns the number of stored records.
	Len(ctx context.Context) (int, error)

	// Close releases the store and discards its records.
	Close() error
}

// Open creates a fresh, empty store for the named backend.
func Open(backend string) (Store, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendSQLite:
		s, err := OpenSQLite()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q: must be one of %v", backend, ValidBackends)
	}
}

// IsValidBackend checks if backend is one of ValidBackends.
func IsValidBackend(backend string) bool {
	for _, b := range ValidBackends {
		if b == backend {
			return true
		}
	}
	return false
}

// Render formats records as a history listing: a "history:" header and one
// "- <line>" per record, or "history: (empty)" when nothing has been saved.
func Render(records []Record) []string {
	if len(records) == 0 {
		return []string{"history: (empty)"}
	}
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, "history:")
	for _, r := range records {
		lines = append(lines, "- "+r.Display())
	}
	return lines
}
