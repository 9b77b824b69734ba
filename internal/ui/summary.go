package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"listinha/internal/export"
	"listinha/internal/list"
)

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "b", "e", "esc":
		// back to review for edits, unconditional
		m.screen = screenReview
		return m, nil
	case "g":
		return m, m.generatePDF()
	case "r":
		m.confirm = confirmRestart
		return m, nil
	}
	return m, nil
}

// generatePDF writes the summary document next to the list data. Failure
// is a one-line notification; nothing else happens.
func (m *Model) generatePDF() tea.Cmd {
	now := time.Now()
	entries := m.mgr.Entries()
	purchased := list.Purchased(entries)
	pending := list.Pending(entries)
	total := list.Total(purchased)

	path := filepath.Join(m.exportDir, export.FileName(now))
	f, err := os.Create(path)
	if err != nil {
		return m.showToast("Erro ao gerar o PDF.")
	}
	defer f.Close()
	if err := export.WritePDF(f, purchased, pending, total, now); err != nil {
		return m.showToast("Erro ao gerar o PDF.")
	}
	return m.showToast("PDF gerado com sucesso! (" + path + ")")
}

func (m Model) viewSummary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Resumo da Compra") + "\n\n")

	purchased := list.Purchased(m.mgr.Entries())
	if len(purchased) == 0 {
		b.WriteString(mutedStyle.Render("Nenhum item foi marcado como comprado.") + "\n")
	} else {
		for _, e := range purchased {
			b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
				successStyle.Render(boxChecked),
				e.Name,
				mutedStyle.Render(fmt.Sprintf("%d %s × %s", e.Quantity, e.Unit, brl(e.Price))),
				brl(e.LineTotal()),
			))
		}
	}

	b.WriteString("\n" + strings.Repeat("─", 40) + "\n")
	b.WriteString(titleStyle.Render("TOTAL: ") + totalStyle.Render(brl(list.Total(purchased))) + "\n\n")
	b.WriteString(helpStyle.Render("g gerar PDF • e editar lista • r reiniciar • q sair"))
	return b.String()
}
