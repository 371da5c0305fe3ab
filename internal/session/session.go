// Package session models one user's interaction with the converter.
//
// A Session owns a history.Store and remembers the most recent successful
// conversion, so that "convert" and "save" stay two separate actions: Save
// appends whatever Convert last produced and reports NOTHING_TO_SAVE when
// there is none.
//
// Sessions are synchronous and not safe for concurrent use. A host serving
// several users keeps one Session per user, usually through a Manager.
package session

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/roach88/unitconv/internal/history"
	"github.com/roach88/unitconv/internal/units"
)

// Session is the interaction context of a single user.
type Session struct {
	id    string
	store history.Store
	last  *units.Conversion
}

// New creates a session that owns store. Closing the session closes store.
func New(store history.Store) *Session {
	return NewWithID(uuid.Must(uuid.NewV7()).String(), store)
}

// NewWithID creates a session with a caller-chosen ID, for deterministic tests.
func NewWithID(id string, store history.Store) *Session {
	return &Session{id: id, store: store}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Convert runs a conversion and caches it as the current result.
//
// Length and Mass entries must be non-negative; any entry must be finite.
// A failed convert clears the cached result so a later Save cannot
// store a stale line.
func (s *Session) Convert(_ context.Context, category units.Category, value float64, from, to units.Unit) (units.Conversion, error) {
	s.last = nil

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return units.Conversion{}, newError(ErrCodeInvalidValue, "value must be a finite number, got %v", value)
	}
	if value < 0 && (category == units.Length || category == units.Mass) {
		return units.Conversion{}, newError(ErrCodeNegativeValue, "%s value must not be negative, got %s", category, units.FormatValue(value))
	}

	conv, err := units.New(category, value, from, to)
	if err != nil {
		return units.Conversion{}, fmt.Errorf("convert: %w", err)
	}

	s.last = &conv
	return conv, nil
}

// ConvertLabels parses category and unit labels, then runs Convert.
// A label that does not parse counts as a failed convert and clears the
// cached result.
func (s *Session) ConvertLabels(ctx context.Context, category string, value float64, from, to string) (units.Conversion, error) {
	c, err := units.ParseCategory(category)
	if err != nil {
		s.last = nil
		return units.Conversion{}, fmt.Errorf("convert: %w", err)
	}
	fromUnit, err := units.ParseUnit(c, from)
	if err != nil {
		s.last = nil
		return units.Conversion{}, fmt.Errorf("convert: %w", err)
	}
	toUnit, err := units.ParseUnit(c, to)
	if err != nil {
		s.last = nil
		return units.Conversion{}, fmt.Errorf("convert: %w", err)
	}
	return s.Convert(ctx, c, value, fromUnit, toUnit)
}

// Last returns the cached conversion, if any.
func (s *Session) Last() (units.Conversion, bool) {
	if s.last == nil {
		return units.Conversion{}, false
	}
	return *s.last, true
}

// Save appends the cached conversion to the history.
// The cache is kept, so saving twice stores two identical records.
func (s *Session) Save(ctx context.Context) (history.Record, error) {
	if s.last == nil {
		return history.Record{}, newError(ErrCodeNothingToSave, "please perform a conversion first")
	}

	rec, err := s.store.Append(ctx, history.NewRecord(*s.last))
	if err != nil {
		return history.Record{}, fmt.Errorf("save: %w", err)
	}
	return rec, nil
}

// History returns the saved records in insertion order.
func (s *Session) History(ctx context.Context) ([]history.Record, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return records, nil
}

// Close ends the session and discards its history.
func (s *Session) Close() error {
	s.last = nil
	return s.store.Close()
}
