package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

// ServicosModel is the view model for the services section, rendered
// as a card list rather than a table.
type ServicosModel struct {
	items   []api.Servico
	cursor  int
	loading bool
	failed  bool
	width   int
	height  int
}

// NewServicosModel creates the services section.
func NewServicosModel(width, height int) ServicosModel {
	return ServicosModel{loading: true, width: width, height: height}
}

// SetItems installs a fresh list of services.
func (m *ServicosModel) SetItems(items []api.Servico) {
	m.items = items
	m.loading = false
	m.failed = false
	if m.cursor >= len(items) {
		m.cursor = 0
	}
}

// SetLoading puts the section back into its loading state.
func (m *ServicosModel) SetLoading() {
	m.loading = true
}

// SetFailure marks a failed load, keeping any previously shown items.
func (m *ServicosModel) SetFailure() {
	m.loading = false
	m.failed = true
}

func (m *ServicosModel) selected() (api.Servico, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return api.Servico{}, false
	}
	return m.items[m.cursor], true
}

// Update handles messages for the services view.
func (m ServicosModel) Update(msg tea.Msg) (ServicosModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case tui.KeyDown, "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "n":
			return m, func() tea.Msg {
				return OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceServico}}
			}

		case tui.KeyEnter:
			if s, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceServico, ID: s.ID}}
				}
			}

		case "d":
			if s, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return ConfirmDeleteMsg{Resource: tui.ResourceServico, ID: s.ID}
				}
			}

		case "t":
			if s, ok := m.selected(); ok {
				// Send only the inverted flag, nothing else.
				return m, func() tea.Msg {
					return ToggleServicoMsg{ID: s.ID, Ativo: !s.Ativo}
				}
			}
		}
	}
	return m, nil
}

// View renders the services view.
func (m ServicosModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(tui.DimStyle.Render("Carregando serviços..."))
	case m.failed && len(m.items) == 0:
		b.WriteString(tui.ErrorStyle.Render("Erro ao carregar serviços"))
	case len(m.items) == 0:
		b.WriteString(tui.DimStyle.Render(emptyServicos))
	default:
		for i, s := range m.items {
			b.WriteString(renderServicoCard(s, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("n: novo  enter: editar  t: ativar/desativar  d: excluir"))
	return b.String()
}
