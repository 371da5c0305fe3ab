package history

import "context"

// Memory is a slice-backed Store.
type Memory struct {
	clock   *Clock
	records []Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{clock: NewClock()}
}

// Append implements Store.
func (m *Memory) Append(_ context.Context, r Record) (Record, error) {
	r.Seq = m.clock.Next()
	m.records = append(m.records, r)
	return r, nil
}

// List implements Store.
func (m *Memory) List(_ context.Context) ([]Record, error) {
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Len implements Store.
func (m *Memory) Len(_ context.Context) (int, error) {
	return len(m.records), nil
}

// Close implements Store.
func (m *Memory) Close() error {
	m.records = nil
	return nil
}
