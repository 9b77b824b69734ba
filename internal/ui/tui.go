// Package ui renders the three-screen shopping flow: browse the catalog,
// review the list, summarize the purchase.
package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listinha/internal/list"
	"listinha/internal/voice"
)

type screen int

const (
	screenBrowse screen = iota + 1
	screenReview
	screenSummary
)

// One feedback message at a time, visible for a fixed window; a newer
// message supersedes the old one and its timer.
const toastDuration = 3 * time.Second

type (
	toastClearMsg struct{ seq int }
	voiceDoneMsg  struct{ transcript string }
	voiceErrMsg   struct{ err error }
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmFinalize
	confirmRestart
)

// Model is the Bubble Tea model for the whole app.
type Model struct {
	mgr       *list.Manager
	session   *voice.Session
	exportDir string

	screen screen
	width  int
	height int

	// browse screen
	rows      []browseRow
	cursor    int
	adding    bool
	nameInput textinput.Model
	unitIdx   int
	listening bool

	// review screen
	searchInput textinput.Model
	searching   bool
	pendingOnly bool
	revCursor   int
	editingID   string
	priceInput  textinput.Model

	// overlays
	toast    string
	toastSeq int
	confirm  confirmKind
}

// New builds the initial model. exportDir is where generated PDFs land.
func New(mgr *list.Manager, session *voice.Session, exportDir string) Model {
	m := Model{
		mgr:       mgr,
		session:   session,
		exportDir: exportDir,
		screen:    screenBrowse,
		width:     80,
		height:    24,
	}

	m.nameInput = textinput.New()
	m.nameInput.Prompt = "> "
	m.nameInput.Placeholder = "Nome do produto..."
	m.nameInput.CharLimit = 80

	m.priceInput = textinput.New()
	m.priceInput.Prompt = "R$ "
	m.priceInput.Placeholder = "0,00"
	m.priceInput.CharLimit = 12

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/ "
	m.searchInput.Placeholder = "Pesquisar item na lista..."
	m.searchInput.CharLimit = 80

	m.rows = buildBrowseRows()
	m.cursor = firstItemRow(m.rows)
	return m
}

// Run starts the interactive program and blocks until the user quits.
// Every mutation is persisted as it happens via the manager's change hook,
// so quitting needs no save step.
func Run(mgr *list.Manager, session *voice.Session, exportDir string) error {
	p := tea.NewProgram(New(mgr, session, exportDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case toastClearMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case voiceDoneMsg:
		m.listening = false
		return m, m.applyTranscript(msg.transcript)

	case voiceErrMsg:
		m.listening = false
		switch {
		case errors.Is(msg.err, voice.ErrPermissionDenied):
			return m, m.showToast("Permissão para microfone negada.")
		case errors.Is(msg.err, voice.ErrAlreadyListening):
			return m, nil
		default:
			return m, m.showToast("Erro no reconhecimento de voz.")
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirm != confirmNone {
			return m.updateConfirm(msg)
		}
		if m.adding {
			return m.updateAddForm(msg)
		}
		if m.editingID != "" {
			return m.updatePriceEdit(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		switch m.screen {
		case screenBrowse:
			return m.updateBrowse(msg)
		case screenReview:
			return m.updateReview(msg)
		case screenSummary:
			return m.updateSummary(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenBrowse:
		body = m.viewBrowse()
	case screenReview:
		body = m.viewReview()
	case screenSummary:
		body = m.viewSummary()
	}

	out := m.viewHeader() + "\n" + body
	if m.confirm != confirmNone {
		out += "\n" + m.viewConfirm()
	}
	if m.toast != "" {
		out += "\n" + toastStyle.Render(m.toast)
	}
	return out
}

func (m Model) viewHeader() string {
	entries := m.mgr.Entries()
	pending := m.mgr.PendingCount()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %s",
		titleStyle.Render("Lista de Compras"),
		successStyle.Render(boxChecked), len(entries)-pending,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), totalStyle.Render(BRLTotal(m.mgr)),
	)
}

// BRLTotal formats the running total over the whole list.
func BRLTotal(mgr *list.Manager) string {
	return brl(list.Total(mgr.Entries()))
}

// showToast replaces any visible message and restarts the 3 s timer.
func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}

// startVoice launches one capture session in the background. The guard
// against overlapping sessions lives in voice.Session; the listening flag
// here only drives the indicator.
func (m *Model) startVoice() tea.Cmd {
	if !m.session.Supported() {
		return m.showToast("Reconhecimento de voz não é suportado neste dispositivo.")
	}
	if m.listening {
		return nil
	}
	m.listening = true
	session := m.session
	return func() tea.Msg {
		transcript, err := session.Start(context.Background())
		if err != nil {
			return voiceErrMsg{err: err}
		}
		return voiceDoneMsg{transcript: transcript}
	}
}

// applyTranscript runs the interpreter over a finished transcript and adds
// the surviving items as one batch.
func (m *Model) applyTranscript(transcript string) tea.Cmd {
	cmd := voice.Interpret(transcript, m.mgr.Contains)
	added := m.mgr.AddMany(cmd.Matches)
	switch {
	case len(added) > 0:
		names := make([]string, 0, len(added))
		for _, e := range added {
			names = append(names, e.Name)
		}
		return m.showToast(joinNames(names) + " adicionado(s) à lista!")
	case cmd.HadFragments:
		return m.showToast("Nenhum item novo encontrado no comando de voz.")
	default:
		return nil
	}
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "y", "enter":
		kind := m.confirm
		m.confirm = confirmNone
		switch kind {
		case confirmFinalize:
			m.screen = screenSummary
			return m, nil
		case confirmRestart:
			m.mgr.Reset()
			m.screen = screenBrowse
			m.pendingOnly = false
			m.searchInput.SetValue("")
			m.revCursor = 0
			return m, m.showToast("Compra reiniciada!")
		}
	case "n", "esc", "q":
		m.confirm = confirmNone
	}
	return m, nil
}

func (m Model) viewConfirm() string {
	var text string
	switch m.confirm {
	case confirmFinalize:
		text = "Nenhum item foi marcado como comprado.\nDeseja finalizar mesmo assim?"
	case confirmRestart:
		text = "Tem certeza que deseja reiniciar?\nTodos os dados da sua compra atual serão perdidos."
	}
	return modalStyle.Render(text + "\n\n" + helpStyle.Render("s confirmar • n cancelar"))
}
