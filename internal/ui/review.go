package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"listinha/internal/export"
	"listinha/internal/list"
	"listinha/internal/model"
)

func brl(v decimal.Decimal) string { return export.BRL(v) }

// reviewRow is one display row of screen 2.
type reviewRow struct {
	header string
	entry  model.Entry
}

func (r reviewRow) isHeader() bool { return r.header != "" }

// reviewRows derives the filtered, category-grouped rows. Recomputed on
// every read; nothing here is stored.
func (m Model) reviewRows() []reviewRow {
	filtered := m.mgr.Filtered(m.searchInput.Value(), m.pendingOnly)
	var rows []reviewRow
	for _, g := range list.GroupedByCategory(filtered) {
		rows = append(rows, reviewRow{header: g.Name})
		for _, e := range g.Entries {
			rows = append(rows, reviewRow{entry: e})
		}
	}
	return rows
}

// entryAt returns the entry under the review cursor, counting entry rows
// only.
func entryAt(rows []reviewRow, cursor int) (model.Entry, bool) {
	i := 0
	for _, r := range rows {
		if r.isHeader() {
			continue
		}
		if i == cursor {
			return r.entry, true
		}
		i++
	}
	return model.Entry{}, false
}

func countEntries(rows []reviewRow) int {
	n := 0
	for _, r := range rows {
		if !r.isHeader() {
			n++
		}
	}
	return n
}

func (m *Model) clampRevCursor() {
	max := countEntries(m.reviewRows()) - 1
	if m.revCursor > max {
		m.revCursor = max
	}
	if m.revCursor < 0 {
		m.revCursor = 0
	}
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.reviewRows()
	current, hasCurrent := entryAt(rows, m.revCursor)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.revCursor > 0 {
			m.revCursor--
		}
	case "down", "j":
		if m.revCursor < countEntries(rows)-1 {
			m.revCursor++
		}
	case " ", "enter":
		if hasCurrent {
			if _, err := m.mgr.TogglePurchased(current.ID); err == nil {
				m.clampRevCursor()
			}
		}
	case "+", "=":
		if hasCurrent {
			m.mgr.IncrementQuantity(current.ID)
		}
	case "-":
		// decrementing below 1 is a silent no-op
		if hasCurrent {
			m.mgr.DecrementQuantity(current.ID)
		}
	case "p", "e":
		if hasCurrent {
			m.editingID = current.ID
			m.priceInput.SetValue(current.Price.StringFixed(2))
			m.priceInput.CursorEnd()
			m.priceInput.Focus()
		}
	case "d", "x":
		if hasCurrent {
			if removed, ok := m.mgr.RemoveByID(current.ID); ok {
				m.clampRevCursor()
				return m, m.showToast(removed.Name + " removido da lista.")
			}
		}
	case "/":
		m.searching = true
		m.searchInput.Focus()
	case "t":
		m.pendingOnly = !m.pendingOnly
		m.clampRevCursor()
	case "b", "esc":
		m.screen = screenBrowse
	case "f":
		return m.finalize()
	}
	return m, nil
}

// finalize gates the forward transition to the summary screen: an empty
// list is blocked, and a list with nothing purchased needs an explicit
// confirmation first.
func (m Model) finalize() (tea.Model, tea.Cmd) {
	if m.mgr.Len() == 0 {
		return m, m.showToast("Adicione itens à lista antes de finalizar.")
	}
	if !m.mgr.HasPurchased() {
		m.confirm = confirmFinalize
		return m, nil
	}
	m.screen = screenSummary
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.clampRevCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.clampRevCursor()
	return m, cmd
}

// updatePriceEdit commits or discards the inline price edit. An invalid or
// negative value is discarded and the prior price kept.
func (m Model) updatePriceEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(m.priceInput.Value())
		raw = strings.Replace(raw, ",", ".", 1)
		id := m.editingID
		m.editingID = ""
		m.priceInput.Blur()

		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			return m, m.showToast("Preço inválido. Valor mantido.")
		}
		if _, err := m.mgr.Update(id, list.Patch{Price: &price}); err != nil {
			return m, m.showToast("Preço inválido. Valor mantido.")
		}
		return m, nil
	case "esc":
		m.editingID = ""
		m.priceInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.priceInput, cmd = m.priceInput.Update(msg)
	return m, cmd
}

func (m Model) viewReview() string {
	if m.mgr.Len() == 0 {
		return mutedStyle.Render("Sua lista está vazia. Volte para adicionar itens.") +
			"\n" + helpStyle.Render("b voltar • q sair")
	}

	var b strings.Builder

	pending := m.mgr.PendingCount()
	status := "Nenhum item faltando!"
	if pending == 1 {
		status = "1 item faltando"
	} else if pending > 1 {
		status = fmt.Sprintf("%d itens faltando", pending)
	}
	filterLabel := "t filtrar faltantes"
	if m.pendingOnly {
		filterLabel = accentStyle.Render("t somente faltantes")
	}
	b.WriteString(m.searchInput.View() + "   " + pendingStyle.Render(status) +
		"   " + filterLabel + "\n\n")

	rows := m.reviewRows()
	if len(rows) == 0 {
		switch {
		case m.searchInput.Value() != "" && !m.pendingOnly:
			b.WriteString(mutedStyle.Render(fmt.Sprintf("Nenhum item encontrado com o nome %q.", m.searchInput.Value())))
		case m.searchInput.Value() != "" && m.pendingOnly:
			b.WriteString(mutedStyle.Render(fmt.Sprintf("Nenhum item pendente encontrado com o nome %q.", m.searchInput.Value())))
		default:
			b.WriteString(successStyle.Render("Todos os itens foram comprados!"))
		}
		b.WriteString("\n")
	}

	entryIdx := 0
	for _, r := range rows {
		if r.isHeader() {
			b.WriteString(categoryStyle.Render(r.header) + "\n")
			continue
		}
		e := r.entry
		box := mutedStyle.Render(boxUnchecked)
		name := e.Name
		if e.Purchased {
			box = successStyle.Render(boxChecked)
			name = purchasedStyle.Render(name)
		}
		line := fmt.Sprintf("%s %s  %s  %s",
			box, name,
			mutedStyle.Render(fmt.Sprintf("%d %s", e.Quantity, e.Unit)),
			brl(e.Price))
		if e.ID == m.editingID {
			line += "  " + m.priceInput.View()
		} else if !e.Price.IsZero() {
			line += mutedStyle.Render("  = ") + brl(e.LineTotal())
		}
		prefix := "  "
		if entryIdx == m.revCursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
		entryIdx++
	}

	b.WriteString("\n" + accentStyle.Render("Total Previsto: ") +
		totalStyle.Render(brl(list.Total(m.mgr.Entries()))) + "\n")
	b.WriteString(helpStyle.Render(
		"espaço comprado • +/- quantidade • p preço • d excluir • / pesquisar • b voltar • f finalizar • q sair"))
	return b.String()
}
