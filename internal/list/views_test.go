package list

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listinha/internal/catalog"
)

func TestGroupedByCategory(t *testing.T) {
	m := NewManager(nil)
	// Insertion order deliberately scrambles category order.
	_, err := m.Add("Pilha AA", catalog.UnitUnidade, "") // no catalog match
	require.NoError(t, err)
	_, err = m.Add("Banana", catalog.UnitKg, "") // Hortifruti
	require.NoError(t, err)
	_, err = m.Add("Arroz", catalog.UnitKg, "") // Alimentos básicos
	require.NoError(t, err)
	_, err = m.Add("Feijão", catalog.UnitKg, "")
	require.NoError(t, err)

	groups := GroupedByCategory(m.Entries())
	require.Len(t, groups, 3)

	assert.Equal(t, "🍚 Alimentos básicos", groups[0].Name)
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Arroz", groups[0].Entries[0].Name)
	assert.Equal(t, "Feijão", groups[0].Entries[1].Name)

	assert.Equal(t, "🥬 Hortifruti", groups[1].Name)

	assert.Equal(t, catalog.OtherCategory, groups[2].Name, "Outros sorts last regardless of insertion order")
	require.Len(t, groups[2].Entries, 1)
	assert.Equal(t, "Pilha AA", groups[2].Entries[0].Name)
}

func TestGroupedByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupedByCategory(nil))
}

func TestTotal(t *testing.T) {
	t.Run("empty set totals zero", func(t *testing.T) {
		assert.True(t, Total(nil).IsZero())
	})

	t.Run("sums quantity times price", func(t *testing.T) {
		m := NewManager(nil)
		a, err := m.Add("Arroz", catalog.UnitKg, "")
		require.NoError(t, err)
		b, err := m.Add("Ovos", catalog.UnitDuzia, "")
		require.NoError(t, err)

		qty := 3
		price := decimal.RequireFromString("5.50")
		_, err = m.Update(a.ID, Patch{Quantity: &qty, Price: &price})
		require.NoError(t, err)

		price2 := decimal.RequireFromString("12.00")
		_, err = m.Update(b.ID, Patch{Price: &price2})
		require.NoError(t, err)

		// 3×5.50 + 1×12.00
		assert.True(t, Total(m.Entries()).Equal(decimal.RequireFromString("28.50")))
	})
}

func TestPurchasedPendingSplit(t *testing.T) {
	m := NewManager(nil)
	a, err := m.Add("Arroz", catalog.UnitKg, "")
	require.NoError(t, err)
	_, err = m.Add("Feijão", catalog.UnitKg, "")
	require.NoError(t, err)
	_, err = m.TogglePurchased(a.ID)
	require.NoError(t, err)

	purchased := Purchased(m.Entries())
	require.Len(t, purchased, 1)
	assert.Equal(t, "Arroz", purchased[0].Name)

	pending := Pending(m.Entries())
	require.Len(t, pending, 1)
	assert.Equal(t, "Feijão", pending[0].Name)
}
