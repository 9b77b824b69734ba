package list

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listinha/internal/catalog"
	"listinha/internal/model"
)

func TestAdd(t *testing.T) {
	t.Run("creates entry with defaults", func(t *testing.T) {
		m := NewManager(nil)
		e, err := m.Add("Arroz", catalog.UnitKg, "🍚")
		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, "Arroz", e.Name)
		assert.Equal(t, 1, e.Quantity)
		assert.True(t, e.Price.IsZero())
		assert.False(t, e.Purchased)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.Add("Arroz", catalog.UnitKg, "")
		require.NoError(t, err)

		_, err = m.Add("arroz", catalog.UnitKg, "")
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Equal(t, 1, m.Len(), "rejected add must not change length")
	})

	t.Run("duplicate check ignores unit", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.Add("Leite", catalog.UnitLitro, "")
		require.NoError(t, err)
		_, err = m.Add("Leite", catalog.UnitCaixa, "")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.Add("   ", catalog.UnitUnidade, "")
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Equal(t, 0, m.Len())
	})
}

func TestIDsStayUniqueAndStable(t *testing.T) {
	m := NewManager(nil)
	a, err := m.Add("Arroz", catalog.UnitKg, "")
	require.NoError(t, err)
	b, err := m.Add("Feijão", catalog.UnitKg, "")
	require.NoError(t, err)
	c, err := m.Add("Ovos", catalog.UnitDuzia, "")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)

	// Unrelated mutations must not disturb other ids.
	require.True(t, m.RemoveByName("Feijão"))
	_, err = m.TogglePurchased(c.ID)
	require.NoError(t, err)

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, a.ID, entries[0].ID)
	assert.Equal(t, c.ID, entries[1].ID)
}

func TestAddMany(t *testing.T) {
	arroz, _ := catalog.Find("Arroz")
	feijao, _ := catalog.Find("Feijão")
	ovos, _ := catalog.Find("Ovos")

	t.Run("appends batch in order", func(t *testing.T) {
		m := NewManager(nil)
		added := m.AddMany([]catalog.Item{arroz, feijao, ovos})
		require.Len(t, added, 3)
		assert.Equal(t, "Arroz", added[0].Name)
		assert.Equal(t, "Feijão", added[1].Name)
		assert.Equal(t, "Ovos", added[2].Name)
	})

	t.Run("skips already listed and intra-batch repeats", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.Add("arroz", catalog.UnitKg, "")
		require.NoError(t, err)

		added := m.AddMany([]catalog.Item{arroz, feijao, feijao})
		require.Len(t, added, 1)
		assert.Equal(t, "Feijão", added[0].Name)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("notifies once per batch", func(t *testing.T) {
		m := NewManager(nil)
		calls := 0
		m.SetOnChange(func([]model.Entry) { calls++ })
		m.AddMany([]catalog.Item{arroz, feijao})
		assert.Equal(t, 1, calls)

		m.AddMany([]catalog.Item{arroz}) // all duplicates: no change, no call
		assert.Equal(t, 1, calls)
	})
}

func TestRemove(t *testing.T) {
	m := NewManager(nil)
	e, err := m.Add("Café", catalog.UnitPacote, "")
	require.NoError(t, err)

	t.Run("by name is case-insensitive", func(t *testing.T) {
		assert.False(t, m.RemoveByName("chá"))
		assert.True(t, m.RemoveByName("CAFÉ"))
		assert.Equal(t, 0, m.Len())
	})

	t.Run("by id returns the removed entry", func(t *testing.T) {
		e, err = m.Add("Café", catalog.UnitPacote, "")
		require.NoError(t, err)
		removed, ok := m.RemoveByID(e.ID)
		require.True(t, ok)
		assert.Equal(t, "Café", removed.Name)

		_, ok = m.RemoveByID(e.ID)
		assert.False(t, ok, "second removal is a no-op")
	})
}

func TestUpdate(t *testing.T) {
	newManagerWithEntry := func(t *testing.T) (*Manager, model.Entry) {
		t.Helper()
		m := NewManager(nil)
		e, err := m.Add("Banana", catalog.UnitKg, "")
		require.NoError(t, err)
		return m, e
	}

	t.Run("merges only provided fields", func(t *testing.T) {
		m, e := newManagerWithEntry(t)
		price := decimal.RequireFromString("4.99")
		got, err := m.Update(e.ID, Patch{Price: &price})
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(price))
		assert.Equal(t, 1, got.Quantity, "unset fields stay put")
		assert.False(t, got.Purchased)
	})

	t.Run("rejects negative price, keeping the prior value", func(t *testing.T) {
		m, e := newManagerWithEntry(t)
		price := decimal.RequireFromString("2.50")
		_, err := m.Update(e.ID, Patch{Price: &price})
		require.NoError(t, err)

		bad := decimal.RequireFromString("-1")
		_, err = m.Update(e.ID, Patch{Price: &bad})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.True(t, m.Entries()[0].Price.Equal(price))
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		m, e := newManagerWithEntry(t)
		zero := 0
		_, err := m.Update(e.ID, Patch{Quantity: &zero})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 1, m.Entries()[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		m, _ := newManagerWithEntry(t)
		q := 3
		_, err := m.Update("missing", Patch{Quantity: &q})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuantitySteppers(t *testing.T) {
	m := NewManager(nil)
	e, err := m.Add("Tomate", catalog.UnitKg, "")
	require.NoError(t, err)

	got, err := m.IncrementQuantity(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)

	got, err = m.DecrementQuantity(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)

	// Repeated decrements at the floor stay at 1.
	for i := 0; i < 3; i++ {
		got, err = m.DecrementQuantity(e.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Quantity)
	}
}

func TestReset(t *testing.T) {
	m := NewManager(nil)
	_, err := m.Add("Sal", catalog.UnitKg, "")
	require.NoError(t, err)
	calls := 0
	m.SetOnChange(func(snapshot []model.Entry) {
		calls++
		assert.Empty(t, snapshot)
	})
	m.Reset()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 1, calls)
}

func TestFiltered(t *testing.T) {
	m := NewManager(nil)
	a, err := m.Add("Arroz", catalog.UnitKg, "")
	require.NoError(t, err)
	_, err = m.Add("Farinha de Trigo", catalog.UnitKg, "")
	require.NoError(t, err)
	_, err = m.Add("Feijão", catalog.UnitKg, "")
	require.NoError(t, err)
	_, err = m.TogglePurchased(a.ID)
	require.NoError(t, err)

	t.Run("search is a case-insensitive substring match", func(t *testing.T) {
		got := m.Filtered("AR", false)
		require.Len(t, got, 2)
		assert.Equal(t, "Arroz", got[0].Name)
		assert.Equal(t, "Farinha de Trigo", got[1].Name)
	})

	t.Run("pending-only hides purchased entries", func(t *testing.T) {
		got := m.Filtered("", true)
		require.Len(t, got, 2)
		for _, e := range got {
			assert.False(t, e.Purchased)
		}
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		got := m.Filtered("arroz", true)
		assert.Empty(t, got, "Arroz matches the search but is purchased")
	})

	t.Run("counters agree", func(t *testing.T) {
		assert.Equal(t, 2, m.PendingCount())
		assert.True(t, m.HasPurchased())
	})
}
