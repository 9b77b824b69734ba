package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"listinha/internal/catalog"
	"listinha/internal/list"
)

// browseRow is one display row of screen 1: a category header or an item.
type browseRow struct {
	header string
	item   catalog.Item
}

func (r browseRow) isHeader() bool { return r.header != "" }

func buildBrowseRows() []browseRow {
	var rows []browseRow
	for _, c := range catalog.Categories() {
		rows = append(rows, browseRow{header: c.Name})
		for _, it := range c.Items {
			rows = append(rows, browseRow{item: it})
		}
	}
	return rows
}

func firstItemRow(rows []browseRow) int {
	for i, r := range rows {
		if !r.isHeader() {
			return i
		}
	}
	return 0
}

// moveCursor steps over item rows, skipping headers.
func (m *Model) moveCursor(delta int) {
	i := m.cursor
	for {
		i += delta
		if i < 0 || i >= len(m.rows) {
			return
		}
		if !m.rows[i].isHeader() {
			m.cursor = i
			return
		}
	}
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter", " ":
		it := m.rows[m.cursor].item
		if m.mgr.Contains(it.Name) {
			m.mgr.RemoveByName(it.Name)
			return m, m.showToast(it.Name + " removido da lista.")
		}
		if _, err := m.mgr.Add(it.Name, it.Unit, it.Icon); err != nil {
			return m, m.showToast(it.Name + " já está na lista.")
		}
		return m, m.showToast(it.Name + " adicionado à lista!")
	case "a":
		m.adding = true
		m.unitIdx = 0
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, nil
	case "v":
		return m, m.startVoice()
	case "n", "tab":
		// forward to review is unconditional
		m.screen = screenReview
		m.revCursor = 0
		return m, nil
	}
	return m, nil
}

// updateAddForm handles the custom-item form: free name plus a unit picker.
func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	units := catalog.Units()
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, m.showToast("Por favor, digite o nome do produto.")
		}
		_, err := m.mgr.Add(name, units[m.unitIdx], "")
		if err != nil {
			if errors.Is(err, list.ErrDuplicate) {
				return m, m.showToast(name + " já está na lista.")
			}
			return m, m.showToast("Não foi possível adicionar o item.")
		}
		m.adding = false
		m.nameInput.Blur()
		return m, m.showToast(name + " adicionado à lista!")
	case "esc":
		m.adding = false
		m.nameInput.Blur()
		return m, nil
	case "left", "shift+tab":
		m.unitIdx = (m.unitIdx + len(units) - 1) % len(units)
		return m, nil
	case "right", "tab":
		m.unitIdx = (m.unitIdx + 1) % len(units)
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) viewBrowse() string {
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	start := 0
	if m.cursor > visible/2 {
		start = m.cursor - visible/2
	}
	if start+visible > len(m.rows) {
		start = len(m.rows) - visible
	}
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for i := start; i < len(m.rows) && i < start+visible; i++ {
		r := m.rows[i]
		if r.isHeader() {
			b.WriteString(categoryStyle.Render(r.header) + "\n")
			continue
		}
		box := mutedStyle.Render(boxUnchecked)
		name := r.item.Name
		if m.mgr.Contains(r.item.Name) {
			box = successStyle.Render(boxChecked)
		}
		line := box + " " + r.item.Icon + " " + name + " " + mutedStyle.Render("("+string(r.item.Unit)+")")
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
	}

	if m.adding {
		units := catalog.Units()
		form := "Adicionar item personalizado\n" + m.nameInput.View() +
			"\nUnidade: " + accentStyle.Render(string(units[m.unitIdx])) +
			helpStyle.Render("  ◂ ▸ trocar")
		b.WriteString(panelStyle.Render(form) + "\n")
	}

	voiceLine := "v falar"
	if !m.session.Supported() {
		voiceLine = "voz indisponível"
	} else if m.listening {
		voiceLine = errorStyle.Render("● ouvindo...")
	}

	b.WriteString(helpStyle.Render(
		"enter marcar/remover • a personalizado • " + voiceLine + " • n revisar • q sair"))
	return b.String()
}

func joinNames(names []string) string { return strings.Join(names, ", ") }
