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

// ClientesModel is the view model for the clients section. Every
// keystroke in the search input emits a SearchInputMsg; the app owns
// the debounce timer.
type ClientesModel struct {
	table       table.Model
	items       []api.Cliente
	loading     bool
	failed      bool
	search      textinput.Model
	searchFocus bool
	width       int
	height      int
}

// NewClientesModel creates the clients section.
func NewClientesModel(width, height int) ClientesModel {
	columns := []table.Column{
		{Title: "Nome", Width: 28},
		{Title: "Telefone", Width: 18},
		{Title: "Email", Width: 30},
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

	si := textinput.New()
	si.Placeholder = "buscar cliente..."
	si.CharLimit = 80
	si.Width = 30

	return ClientesModel{
		table:   t,
		loading: true,
		search:  si,
		width:   width,
		height:  height,
	}
}

// SetItems installs a fresh list and rebuilds the table rows.
func (m *ClientesModel) SetItems(items []api.Cliente) {
	m.items = items
	m.loading = false
	m.failed = false

	rows := make([]table.Row, len(items))
	for i, c := range items {
		rows[i] = clienteRow(c)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(items) {
		m.table.SetCursor(0)
	}
}

// SetLoading puts the section back into its loading state.
func (m *ClientesModel) SetLoading() {
	m.loading = true
}

// SetFailure marks a failed load, keeping any previously shown items.
func (m *ClientesModel) SetFailure() {
	m.loading = false
	m.failed = true
}

// Query returns the current search input.
func (m *ClientesModel) Query() string {
	return strings.TrimSpace(m.search.Value())
}

// ResetSearch clears the search input without emitting a request.
func (m *ClientesModel) ResetSearch() {
	m.search.SetValue("")
	m.search.Blur()
	m.searchFocus = false
}

func (m *ClientesModel) selected() (api.Cliente, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return api.Cliente{}, false
	}
	return m.items[i], true
}

// Update handles messages for the clients view.
func (m ClientesModel) Update(msg tea.Msg) (ClientesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		if m.searchFocus {
			switch msg.String() {
			case tui.KeyEsc, tui.KeyEnter:
				m.searchFocus = false
				m.search.Blur()
				return m, nil
			}
			before := m.search.Value()
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			if m.search.Value() != before {
				query := m.Query()
				return m, tea.Batch(cmd, func() tea.Msg {
					return SearchInputMsg{Query: query}
				})
			}
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searchFocus = true
			return m, m.search.Focus()

		case "n":
			return m, func() tea.Msg {
				return OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceCliente}}
			}

		case tui.KeyEnter:
			if c, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceCliente, ID: c.ID}}
				}
			}

		case "d":
			if c, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return ConfirmDeleteMsg{Resource: tui.ResourceCliente, ID: c.ID}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the clients view.
func (m ClientesModel) View() string {
	var b strings.Builder

	b.WriteString("Busca: ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(tui.DimStyle.Render("Carregando clientes..."))
	case m.failed && len(m.items) == 0:
		b.WriteString(tui.ErrorStyle.Render("Erro ao carregar clientes"))
	case len(m.items) == 0:
		b.WriteString(tui.DimStyle.Render(emptyClientes))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("/: buscar  n: novo  enter: editar  d: excluir"))
	return b.String()
}
