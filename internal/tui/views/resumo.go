package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/format"
	"github.com/navalha-dev/navalha/internal/tui"
)

// ResumoModel is the view model for the summary section. The metric
// boxes render only after both backing fetches have resolved; the
// upcoming panel loads separately afterwards.
type ResumoModel struct {
	summary         tui.Summary
	summaryReady    bool
	proximos        []api.Agendamento
	proximosReady   bool
	proximosFailure bool
	width           int
}

// NewResumoModel creates the summary section in its loading state.
func NewResumoModel(width int) ResumoModel {
	return ResumoModel{width: width}
}

// SetSummary installs the derived metrics once both fetches resolved.
func (m *ResumoModel) SetSummary(s tui.Summary) {
	m.summary = s
	m.summaryReady = true
}

// SetProximos installs the upcoming appointments panel.
func (m *ResumoModel) SetProximos(items []api.Agendamento, failed bool) {
	m.proximos = items
	m.proximosReady = true
	m.proximosFailure = failed
}

// Reset returns the section to its loading state before a reload.
func (m *ResumoModel) Reset() {
	m.summaryReady = false
	m.proximosReady = false
	m.proximosFailure = false
	m.proximos = nil
}

// Update handles messages for the summary view.
func (m ResumoModel) Update(msg tea.Msg) (ResumoModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// View renders the summary section.
func (m ResumoModel) View() string {
	var b strings.Builder

	if !m.summaryReady {
		b.WriteString(tui.DimStyle.Render("Carregando resumo..."))
		return b.String()
	}

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStatBox("Agendamentos hoje", renderCount(m.summary.AgendamentosHoje)),
		" ",
		renderStatBox("Clientes", renderCount(m.summary.TotalClientes)),
		" ",
		renderStatBox("Receita hoje", format.Money(m.summary.ReceitaHoje)),
	)
	b.WriteString(boxes)
	b.WriteString("\n\n")

	switch {
	case !m.proximosReady:
		b.WriteString(tui.DimStyle.Render("Carregando próximos agendamentos..."))
	case m.proximosFailure:
		b.WriteString(tui.ErrorStyle.Render("Erro ao carregar próximos agendamentos"))
	default:
		b.WriteString(renderProximos(m.proximos))
	}
	return b.String()
}
