// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/config"
	"github.com/navalha-dev/navalha/internal/log"
)

// Screen represents the top-level screen of the TUI.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
)

// Section represents the active section inside the dashboard screen.
type Section int

const (
	SectionResumo Section = iota
	SectionAgendamentos
	SectionClientes
	SectionServicos
)

// sectionCount is used when cycling sections with Tab.
const sectionCount = 4

// Next returns the section after s, wrapping around.
func (s Section) Next() Section {
	return (s + 1) % sectionCount
}

// Name returns the section identifier used in logs.
func (s Section) Name() string {
	switch s {
	case SectionResumo:
		return "resumo"
	case SectionAgendamentos:
		return "agendamentos"
	case SectionClientes:
		return "clientes"
	case SectionServicos:
		return "servicos"
	default:
		return "desconhecida"
	}
}

// Title returns the section heading shown in the navigation bar.
func (s Section) Title() string {
	switch s {
	case SectionResumo:
		return "Resumo"
	case SectionAgendamentos:
		return "Agendamentos"
	case SectionClientes:
		return "Clientes"
	case SectionServicos:
		return "Serviços"
	default:
		return "?"
	}
}

// Resource identifies which record type a modal or row action targets.
type Resource int

const (
	ResourceAgendamento Resource = iota
	ResourceCliente
	ResourceServico
)

// Label returns the singular display name of the resource.
func (r Resource) Label() string {
	switch r {
	case ResourceAgendamento:
		return "Agendamento"
	case ResourceCliente:
		return "Cliente"
	case ResourceServico:
		return "Serviço"
	default:
		return "?"
	}
}

// Name returns the resource identifier used in logs.
func (r Resource) Name() string {
	switch r {
	case ResourceAgendamento:
		return "agendamento"
	case ResourceCliente:
		return "cliente"
	case ResourceServico:
		return "servico"
	default:
		return "?"
	}
}

// Section returns the dashboard section that lists this resource.
func (r Resource) Section() Section {
	switch r {
	case ResourceAgendamento:
		return SectionAgendamentos
	case ResourceCliente:
		return SectionClientes
	default:
		return SectionServicos
	}
}

// Summary holds the derived metrics of the resumo section. Both
// concurrent responses (today's appointments and the client list) must
// have resolved before it is computed.
type Summary struct {
	AgendamentosHoje int
	TotalClientes    int
	ReceitaHoje      float64
}

// ComputeSummary derives the resumo metrics. Revenue counts today's
// concluded appointments, priced from the denormalized service link;
// appointments whose service no longer resolves contribute zero.
func ComputeSummary(hoje []api.Agendamento, clientes []api.Cliente) Summary {
	var receita float64
	for _, ag := range hoje {
		if ag.Status == "concluido" && ag.Servico != nil {
			receita += ag.Servico.Valor
		}
	}
	return Summary{
		AgendamentosHoje: len(hoje),
		TotalClientes:    len(clientes),
		ReceitaHoje:      receita,
	}
}

// Model is the main TUI model that holds the shared application state.
type Model struct {
	// Wiring
	Cfg *config.Config
	API *api.Client
	Log *log.Logger

	// Session state: User is non-nil exactly while the dashboard shows.
	User *api.User

	// Router state
	Screen  Screen
	Section Section

	// Notification channel
	Notice Notice

	// Shared spinner for loading states
	Spinner spinner.Model

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new Model with the given configuration and gateway.
func NewModel(cfg *config.Config, client *api.Client, logger *log.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		Cfg:     cfg,
		API:     client,
		Log:     logger,
		Screen:  ScreenLogin,
		Section: SectionResumo,
		Spinner: sp,

		// Default dimensions (updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}
