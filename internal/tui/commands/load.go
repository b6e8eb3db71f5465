package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

// Every load command carries the sequence token its request was issued
// with, so the router can drop responses superseded by a newer request.

// LoadAgendamentosCmd fetches the appointments list with the given filters.
func LoadAgendamentosCmd(client *api.Client, seq int, filter api.AgendamentoFilter) tea.Cmd {
	return func() tea.Msg {
		items, err := client.ListAgendamentos(context.Background(), filter)
		return tui.AgendamentosMsg{Seq: seq, Items: items, Err: err}
	}
}

// LoadClientesCmd fetches the full client list.
func LoadClientesCmd(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.ListClientes(context.Background())
		return tui.ClientesMsg{Seq: seq, Items: items, Err: err}
	}
}

// SearchClientesCmd fetches clients matching the search term.
func SearchClientesCmd(client *api.Client, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := client.SearchClientes(context.Background(), query)
		return tui.ClientesMsg{Seq: seq, Items: items, Err: err}
	}
}

// LoadServicosCmd fetches all services, inactive ones included.
func LoadServicosCmd(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.AllServicos(context.Background())
		return tui.ServicosMsg{Seq: seq, Items: items, Err: err}
	}
}

// LoadHojeCmd fetches today's appointments for the resumo metrics.
func LoadHojeCmd(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.AgendamentosHoje(context.Background())
		return tui.HojeMsg{Seq: seq, Items: items, Err: err}
	}
}

// LoadResumoClientesCmd fetches the client list for the resumo metrics.
func LoadResumoClientesCmd(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.ListClientes(context.Background())
		return tui.ResumoClientesMsg{Seq: seq, Items: items, Err: err}
	}
}

// LoadProximosCmd fetches the upcoming appointments panel. It is issued
// only after both metric fetches have resolved.
func LoadProximosCmd(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.ProximosAgendamentos(context.Background())
		return tui.ProximosMsg{Seq: seq, Items: items, Err: err}
	}
}
