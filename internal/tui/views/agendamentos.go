package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

// statusFilters are the filter choices cycled with 's'. The empty
// string means no status filter.
var statusFilters = []string{"", "pendente", "agendado", "confirmado", "concluido", "cancelado"}

// AgendamentosModel is the view model for the appointments section.
type AgendamentosModel struct {
	table       table.Model
	items       []api.Agendamento
	loading     bool
	failed      bool
	dateInput   textinput.Model
	statusIndex int
	filterFocus bool
	width       int
	height      int
}

// NewAgendamentosModel creates the appointments section.
func NewAgendamentosModel(width, height int) AgendamentosModel {
	columns := []table.Column{
		{Title: "Data/Hora", Width: 18},
		{Title: "Cliente", Width: 24},
		{Title: "Serviço", Width: 24},
		{Title: "Status", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(height-10),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = tui.SelectedStyle
	t.SetStyles(s)

	di := textinput.New()
	di.Placeholder = "AAAA-MM-DD"
	di.CharLimit = 10
	di.Width = 12

	return AgendamentosModel{
		table:     t,
		loading:   true,
		dateInput: di,
		width:     width,
		height:    height,
	}
}

// SetItems installs a fresh list and rebuilds the table rows.
func (m *AgendamentosModel) SetItems(items []api.Agendamento) {
	m.items = items
	m.loading = false
	m.failed = false

	rows := make([]table.Row, len(items))
	for i, a := range items {
		rows[i] = agendamentoRow(a)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(items) {
		m.table.SetCursor(0)
	}
}

// SetLoading puts the section back into its loading state.
func (m *AgendamentosModel) SetLoading() {
	m.loading = true
}

// SetFailure marks a failed load. Previously shown items stay on
// screen; the notification carries the error.
func (m *AgendamentosModel) SetFailure() {
	m.loading = false
	m.failed = true
}

// Items returns the currently displayed list.
func (m *AgendamentosModel) Items() []api.Agendamento {
	return m.items
}

// Filter returns the currently applied list filters.
func (m *AgendamentosModel) Filter() api.AgendamentoFilter {
	return api.AgendamentoFilter{
		Date:   strings.TrimSpace(m.dateInput.Value()),
		Status: statusFilters[m.statusIndex],
	}
}

// selected returns the appointment under the cursor.
func (m *AgendamentosModel) selected() (api.Agendamento, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return api.Agendamento{}, false
	}
	return m.items[i], true
}

func (m AgendamentosModel) reload() tea.Cmd {
	filter := m.Filter()
	return func() tea.Msg { return FilterChangedMsg{Filter: filter} }
}

// Update handles messages for the appointments view.
func (m AgendamentosModel) Update(msg tea.Msg) (AgendamentosModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		if m.filterFocus {
			switch msg.String() {
			case tui.KeyEnter:
				m.filterFocus = false
				m.dateInput.Blur()
				return m, m.reload()
			case tui.KeyEsc:
				m.filterFocus = false
				m.dateInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.dateInput, cmd = m.dateInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "n":
			return m, func() tea.Msg {
				return OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceAgendamento}}
			}

		case tui.KeyEnter:
			if a, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceAgendamento, ID: a.ID}}
				}
			}

		case "d":
			if a, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return ConfirmDeleteMsg{Resource: tui.ResourceAgendamento, ID: a.ID}
				}
			}

		case "f":
			m.filterFocus = true
			return m, m.dateInput.Focus()

		case "s":
			m.statusIndex = (m.statusIndex + 1) % len(statusFilters)
			return m, m.reload()

		case "r":
			return m, m.reload()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the appointments section.
func (m AgendamentosModel) View() string {
	var b strings.Builder

	b.WriteString("Data: ")
	b.WriteString(m.dateInput.View())
	b.WriteString("   Status: ")
	if current := statusFilters[m.statusIndex]; current == "" {
		b.WriteString("todos")
	} else {
		b.WriteString(tui.StatusBadge(current))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(tui.DimStyle.Render("Carregando agendamentos..."))
	case m.failed && len(m.items) == 0:
		b.WriteString(tui.ErrorStyle.Render("Erro ao carregar agendamentos"))
	case len(m.items) == 0:
		b.WriteString(tui.DimStyle.Render(emptyAgendamentos))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("n: novo  enter: editar  d: excluir  f: filtrar data  s: filtrar status  r: recarregar"))
	return b.String()
}
