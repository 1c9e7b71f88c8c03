/*
Package refdata defines reference lookup tables and their storage
interface.

PURPOSE:
  Some calculators resolve published, integer-keyed tables (the RMD
  distribution-period table is the canonical case). The tables are
  reference data: bounded, versioned by publication, and shared by every
  request. This package defines the Table shape and the Store interface;
  store/sqlite persists tables, and the Memory implementation here backs
  tests and no-database deployments.

SEE ALSO:
  - store/sqlite: Persistent implementation with seeding
  - retirement/: The RMD calculator consuming these tables
  - fincalc/lookup.go: The clamped resolution rule
*/
package refdata

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTableNotFound is returned when a named table is absent from a store.
var ErrTableNotFound = errors.New("lookup table not found")

// Table is a bounded integer-keyed lookup table. MaxKey names the last
// published row; lookups past it clamp to that row's value.
type Table struct {
	Name   string
	MaxKey int
	Values map[int]float64
}

// MinKey returns the smallest key present. Zero-valued tables return 0.
func (t *Table) MinKey() int {
	first := true
	min := 0
	for k := range t.Values {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

// Store provides named lookup tables.
type Store interface {
	GetTable(ctx context.Context, name string) (*Table, error)
	PutTable(ctx context.Context, table *Table) error
	ListTables(ctx context.Context) ([]string, error)
}

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func NewMemory() *Memory {
	return &Memory{tables: make(map[string]*Table)}
}

func (m *Memory) GetTable(_ context.Context, name string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrTableNotFound)
	}
	// Copy so callers can't mutate the stored table.
	out := &Table{Name: t.Name, MaxKey: t.MaxKey, Values: make(map[int]float64, len(t.Values))}
	for k, v := range t.Values {
		out.Values[k] = v
	}
	return out, nil
}

func (m *Memory) PutTable(_ context.Context, table *Table) error {
	if table == nil || table.Name == "" {
		return errors.New("table must have a name")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := &Table{Name: table.Name, MaxKey: table.MaxKey, Values: make(map[int]float64, len(table.Values))}
	for k, v := range table.Values {
		stored.Values[k] = v
	}
	m.tables[table.Name] = stored
	return nil
}

func (m *Memory) ListTables(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	return names, nil
}
