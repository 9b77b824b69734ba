package voice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notListed(string) bool { return false }

func listed(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if strings.EqualFold(n, name) {
				return true
			}
		}
		return false
	}
}

func TestInterpret(t *testing.T) {
	t.Run("command verb plus comma and e separators", func(t *testing.T) {
		cmd := Interpret("adicionar arroz, feijão e ovos", notListed)
		assert.True(t, cmd.HadFragments)
		assert.Equal(t, []string{"Arroz", "Feijão", "Ovos"}, cmd.Names())
	})

	t.Run("adicione variant is stripped too", func(t *testing.T) {
		cmd := Interpret("Adicione Leite", notListed)
		assert.Equal(t, []string{"Leite"}, cmd.Names())
	})

	t.Run("verb only strips at the start", func(t *testing.T) {
		cmd := Interpret("café e açúcar", notListed)
		assert.Equal(t, []string{"Café", "Açúcar"}, cmd.Names())
	})

	t.Run("unknown fragments are silently dropped", func(t *testing.T) {
		cmd := Interpret("adicionar arroz, picanha maturada e ovos", notListed)
		assert.True(t, cmd.HadFragments)
		assert.Equal(t, []string{"Arroz", "Ovos"}, cmd.Names())
	})

	t.Run("already listed items are dropped but still count as fragments", func(t *testing.T) {
		cmd := Interpret("arroz", listed("Arroz"))
		assert.True(t, cmd.HadFragments, "must report nothing-new, not silence")
		assert.Empty(t, cmd.Matches)
	})

	t.Run("only separators yield zero fragments", func(t *testing.T) {
		cmd := Interpret(" ,  , ", notListed)
		assert.False(t, cmd.HadFragments)
		assert.Empty(t, cmd.Matches)
	})

	t.Run("empty transcript yields nothing", func(t *testing.T) {
		cmd := Interpret("", notListed)
		assert.False(t, cmd.HadFragments)
	})

	t.Run("multi-word names survive the e separator", func(t *testing.T) {
		// "farinha de trigo" must not split: only " e " with spaces is a
		// separator, and "de" is not.
		cmd := Interpret("adicionar farinha de trigo e molho de tomate", notListed)
		require.Equal(t, []string{"Farinha de Trigo", "Molho de Tomate"}, cmd.Names())
	})
}
