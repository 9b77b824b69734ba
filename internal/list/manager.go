// Package list owns the active shopping list. All mutations go through
// Manager; screens only ever see snapshot copies.
package list

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"listinha/internal/catalog"
	"listinha/internal/model"
)

var (
	ErrEmptyName       = errors.New("item name is empty")
	ErrDuplicate       = errors.New("item is already on the list")
	ErrNotFound        = errors.New("entry not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price cannot be negative")
)

// Manager is the sole authority over the entry collection. Entries keep
// insertion order; views re-group them as needed.
//
// Not safe for concurrent use: the app is single-actor (one event loop).
type Manager struct {
	entries  []model.Entry
	onChange func([]model.Entry)
}

// NewManager seeds the manager with previously persisted entries.
func NewManager(initial []model.Entry) *Manager {
	entries := make([]model.Entry, len(initial))
	copy(entries, initial)
	return &Manager{entries: entries}
}

// SetOnChange installs a snapshot hook invoked after every mutation.
// The hook is best-effort: it cannot veto or roll back the mutation.
func (m *Manager) SetOnChange(fn func([]model.Entry)) { m.onChange = fn }

func (m *Manager) notify() {
	if m.onChange != nil {
		m.onChange(m.Entries())
	}
}

// Entries returns a snapshot copy of the list in insertion order.
func (m *Manager) Entries() []model.Entry {
	out := make([]model.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Manager) Len() int { return len(m.entries) }

// Contains reports whether an entry with the given name exists,
// case-insensitively. Unit is deliberately ignored: two items sharing a
// name cannot coexist even with different units.
func (m *Manager) Contains(name string) bool {
	return m.indexByName(name) >= 0
}

func (m *Manager) indexByName(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, e := range m.entries {
		if strings.ToLower(e.Name) == name {
			return i
		}
	}
	return -1
}

func (m *Manager) indexByID(id string) int {
	for i, e := range m.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func newEntry(name string, unit catalog.Unit, icon string) model.Entry {
	return model.Entry{
		ID:       uuid.NewString(),
		Name:     name,
		Unit:     unit,
		Icon:     icon,
		Quantity: 1,
		Price:    decimal.Zero,
	}
}

// Add appends a new entry with quantity 1, price 0 and purchased=false.
// A name already present (case-insensitive) is rejected, not merged.
func (m *Manager) Add(name string, unit catalog.Unit, icon string) (model.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Entry{}, ErrEmptyName
	}
	if m.Contains(name) {
		return model.Entry{}, ErrDuplicate
	}
	e := newEntry(name, unit, icon)
	m.entries = append(m.entries, e)
	m.notify()
	return e, nil
}

// AddMany appends the given catalog items as one batch, skipping any whose
// name is already listed (or repeated earlier in the batch). A single
// change notification covers the whole batch.
func (m *Manager) AddMany(items []catalog.Item) []model.Entry {
	var added []model.Entry
	for _, it := range items {
		if it.Name == "" || m.Contains(it.Name) {
			continue
		}
		e := newEntry(it.Name, it.Unit, it.Icon)
		m.entries = append(m.entries, e)
		added = append(added, e)
	}
	if len(added) > 0 {
		m.notify()
	}
	return added
}

// RemoveByName removes the first entry matching name, if any.
func (m *Manager) RemoveByName(name string) bool {
	i := m.indexByName(name)
	if i < 0 {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.notify()
	return true
}

// RemoveByID removes the entry with the given id and returns it for user
// feedback.
func (m *Manager) RemoveByID(id string) (model.Entry, bool) {
	i := m.indexByID(id)
	if i < 0 {
		return model.Entry{}, false
	}
	removed := m.entries[i]
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.notify()
	return removed, true
}

// Patch carries the fields an update may change; nil fields are left alone.
type Patch struct {
	Quantity  *int
	Price     *decimal.Decimal
	Purchased *bool
}

// Update merges the patch into the entry with the given id. Callers are
// expected to validate bounds first, but the manager still refuses any
// patch that would break the invariants (quantity < 1, price < 0).
func (m *Manager) Update(id string, p Patch) (model.Entry, error) {
	i := m.indexByID(id)
	if i < 0 {
		return model.Entry{}, ErrNotFound
	}
	if p.Quantity != nil && *p.Quantity < 1 {
		return model.Entry{}, ErrInvalidQuantity
	}
	if p.Price != nil && p.Price.IsNegative() {
		return model.Entry{}, ErrInvalidPrice
	}
	e := m.entries[i]
	if p.Quantity != nil {
		e.Quantity = *p.Quantity
	}
	if p.Price != nil {
		e.Price = *p.Price
	}
	if p.Purchased != nil {
		e.Purchased = *p.Purchased
	}
	m.entries[i] = e
	m.notify()
	return e, nil
}

// IncrementQuantity bumps the entry's quantity by one.
func (m *Manager) IncrementQuantity(id string) (model.Entry, error) {
	i := m.indexByID(id)
	if i < 0 {
		return model.Entry{}, ErrNotFound
	}
	q := m.entries[i].Quantity + 1
	return m.Update(id, Patch{Quantity: &q})
}

// DecrementQuantity lowers the entry's quantity by one. At quantity 1 the
// call is a no-op: the current entry is returned unchanged.
func (m *Manager) DecrementQuantity(id string) (model.Entry, error) {
	i := m.indexByID(id)
	if i < 0 {
		return model.Entry{}, ErrNotFound
	}
	if m.entries[i].Quantity <= 1 {
		return m.entries[i], nil
	}
	q := m.entries[i].Quantity - 1
	return m.Update(id, Patch{Quantity: &q})
}

// TogglePurchased flips the purchased flag of the entry with the given id.
func (m *Manager) TogglePurchased(id string) (model.Entry, error) {
	i := m.indexByID(id)
	if i < 0 {
		return model.Entry{}, ErrNotFound
	}
	v := !m.entries[i].Purchased
	return m.Update(id, Patch{Purchased: &v})
}

// Reset clears every entry. The restart flow gates this behind an explicit
// user confirmation.
func (m *Manager) Reset() {
	m.entries = nil
	m.notify()
}

// PendingCount counts entries not yet marked purchased.
func (m *Manager) PendingCount() int {
	n := 0
	for _, e := range m.entries {
		if !e.Purchased {
			n++
		}
	}
	return n
}

// HasPurchased reports whether at least one entry is marked purchased.
func (m *Manager) HasPurchased() bool {
	for _, e := range m.entries {
		if e.Purchased {
			return true
		}
	}
	return false
}

// Filtered returns the entries matching search (case-insensitive substring
// on the name) and, when pendingOnly is set, not yet purchased. The two
// filters compose with AND semantics.
func (m *Manager) Filtered(search string, pendingOnly bool) []model.Entry {
	search = strings.ToLower(search)
	var out []model.Entry
	for _, e := range m.entries {
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		if pendingOnly && e.Purchased {
			continue
		}
		out = append(out, e)
	}
	return out
}
