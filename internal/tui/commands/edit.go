package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

// FetchRecordCmd fetches the record an edit session targets and
// flattens it to form values.
func FetchRecordCmd(client *api.Client, session tui.EditSession) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var values tui.FormValues
		var err error
		switch session.Resource {
		case tui.ResourceAgendamento:
			var a *api.Agendamento
			if a, err = client.GetAgendamento(ctx, session.ID); err == nil {
				values = tui.AgendamentoValues(a)
			}
		case tui.ResourceCliente:
			var c *api.Cliente
			if c, err = client.GetCliente(ctx, session.ID); err == nil {
				values = tui.ClienteValues(c)
			}
		case tui.ResourceServico:
			var s *api.Servico
			if s, err = client.GetServico(ctx, session.ID); err == nil {
				values = tui.ServicoValues(s)
			}
		}
		return tui.RecordValuesMsg{Session: session, Values: values, Err: err}
	}
}

// LoadOptionsCmd fetches the appointment modal's selection lists:
// all clients and the active services.
func LoadOptionsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		clientes, err := client.ListClientes(ctx)
		if err != nil {
			return tui.OptionsMsg{Err: err}
		}
		servicos, err := client.ServicosAtivos(ctx)
		if err != nil {
			return tui.OptionsMsg{Err: err}
		}
		return tui.OptionsMsg{Clientes: clientes, Servicos: servicos}
	}
}

// SubmitCmd creates or updates the record of an edit session.
func SubmitCmd(client *api.Client, session tui.EditSession, payload map[string]any) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var message string
		var err error
		switch session.Resource {
		case tui.ResourceAgendamento:
			if session.Editing() {
				message, err = client.UpdateAgendamento(ctx, session.ID, payload)
			} else {
				message, err = client.CreateAgendamento(ctx, payload)
			}
		case tui.ResourceCliente:
			if session.Editing() {
				message, err = client.UpdateCliente(ctx, session.ID, payload)
			} else {
				message, err = client.CreateCliente(ctx, payload)
			}
		case tui.ResourceServico:
			if session.Editing() {
				message, err = client.UpdateServico(ctx, session.ID, payload)
			} else {
				message, err = client.CreateServico(ctx, payload)
			}
		}
		return tui.MutationMsg{Resource: session.Resource, Message: message, Err: err}
	}
}

// DeleteCmd removes a record. The confirmation step happens before this
// command is issued.
func DeleteCmd(client *api.Client, resource tui.Resource, id int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var message string
		var err error
		switch resource {
		case tui.ResourceAgendamento:
			message, err = client.DeleteAgendamento(ctx, id)
		case tui.ResourceCliente:
			message, err = client.DeleteCliente(ctx, id)
		case tui.ResourceServico:
			message, err = client.DeleteServico(ctx, id)
		}
		return tui.MutationMsg{Resource: resource, Message: message, Err: err}
	}
}

// ToggleServicoCmd flips a service's active flag, sending only that field.
func ToggleServicoCmd(client *api.Client, id int, ativo bool) tea.Cmd {
	return func() tea.Msg {
		message, err := client.UpdateServico(context.Background(), id, map[string]any{
			"ativo": ativo,
		})
		return tui.MutationMsg{Resource: tui.ResourceServico, Message: message, Err: err}
	}
}
