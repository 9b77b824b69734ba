package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	t.Run("accepts every declared unit", func(t *testing.T) {
		for _, u := range Units() {
			got, ok := ParseUnit(string(u))
			require.True(t, ok, "unit %q", u)
			assert.Equal(t, u, got)
		}
	})

	t.Run("is case-insensitive and trims", func(t *testing.T) {
		got, ok := ParseUnit("  KG ")
		require.True(t, ok)
		assert.Equal(t, UnitKg, got)
	})

	t.Run("rejects unknown units", func(t *testing.T) {
		_, ok := ParseUnit("tonelada")
		assert.False(t, ok)
	})
}

func TestFind(t *testing.T) {
	t.Run("matches regardless of case", func(t *testing.T) {
		it, ok := Find("arroz")
		require.True(t, ok)
		assert.Equal(t, "Arroz", it.Name)
		assert.Equal(t, UnitKg, it.Unit)
	})

	t.Run("unknown names miss", func(t *testing.T) {
		_, ok := Find("picanha maturada")
		assert.False(t, ok)
	})
}

func TestCategoryOf(t *testing.T) {
	cat, ok := CategoryOf("Ovos")
	require.True(t, ok)
	assert.Equal(t, "🍚 Alimentos básicos", cat)

	cat, ok = CategoryOf("banana")
	require.True(t, ok)
	assert.Equal(t, "🥬 Hortifruti", cat)

	_, ok = CategoryOf("pilha AA")
	assert.False(t, ok)
}

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		require.NotEmpty(t, c.Name)
		require.NotEqual(t, OtherCategory, c.Name, "fallback bucket must not be a real category")
		for _, it := range c.Items {
			require.NotEmpty(t, it.Name)
			_, ok := ParseUnit(string(it.Unit))
			assert.True(t, ok, "item %q has unknown unit %q", it.Name, it.Unit)
			assert.False(t, seen[it.Name], "duplicate catalog name %q", it.Name)
			seen[it.Name] = true
		}
	}
	assert.Equal(t, CategoryNames()[0], Categories()[0].Name)
}
