package views

import (
	"strconv"
	"strings"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/format"
	"github.com/navalha-dev/navalha/internal/tui"
)

// Empty-list placeholders.
const (
	emptyAgendamentos = "Nenhum agendamento encontrado."
	emptyClientes     = "Nenhum cliente encontrado."
	emptyServicos     = "Nenhum serviço encontrado."
)

// clienteNome resolves the denormalized client link, falling back when
// the record no longer resolves.
func clienteNome(a api.Agendamento) string {
	if a.Cliente != nil {
		return a.Cliente.Nome
	}
	return "Cliente não encontrado"
}

// servicoNome resolves the denormalized service link.
func servicoNome(a api.Agendamento) string {
	if a.Servico != nil {
		return a.Servico.Nome
	}
	return "Serviço não encontrado"
}

// agendamentoRow flattens an appointment for the list table.
func agendamentoRow(a api.Agendamento) []string {
	return []string{
		format.APIDateTime(a.DataHora),
		clienteNome(a),
		servicoNome(a),
		a.Status,
	}
}

// clienteRow flattens a client for the list table.
func clienteRow(c api.Cliente) []string {
	return []string{c.Nome, c.Telefone, c.Email}
}

// renderServicoCard renders one service card. Inactive services are
// dimmed, the focused card gets the highlighted frame.
func renderServicoCard(s api.Servico, selected bool) string {
	var b strings.Builder

	name := s.Nome
	if !s.Ativo {
		name += "  (inativo)"
	}
	b.WriteString(tui.TitleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(format.Money(s.Valor))
	b.WriteString("  ·  ")
	b.WriteString(format.Duration(s.DuracaoEstimada))
	b.WriteString("\n")
	if s.Descricao != "" {
		b.WriteString(tui.DimStyle.Render(s.Descricao))
	} else {
		b.WriteString(tui.DimStyle.Render("Sem descrição"))
	}

	card := b.String()
	if !s.Ativo {
		card = tui.DimStyle.Render(card)
	}
	if selected {
		return tui.SelectedCardStyle.Render(card)
	}
	return tui.CardStyle.Render(card)
}

// renderProximos renders the upcoming appointments panel of the resumo
// section.
func renderProximos(items []api.Agendamento) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Próximos Agendamentos"))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(tui.DimStyle.Render(emptyAgendamentos))
		return b.String()
	}

	for _, a := range items {
		b.WriteString(format.APIDateTime(a.DataHora))
		b.WriteString("  ")
		b.WriteString(clienteNome(a))
		b.WriteString("  ")
		b.WriteString(tui.DimStyle.Render(servicoNome(a)))
		b.WriteString("  ")
		b.WriteString(tui.StatusBadge(a.Status))
		b.WriteString("\n")
	}
	return b.String()
}

// renderStatBox renders one resumo metric box.
func renderStatBox(label, value string) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(value))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(label))
	return tui.BoxStyle.Render(b.String())
}

// renderCount formats an integer metric.
func renderCount(n int) string {
	return strconv.Itoa(n)
}
