package tui

import (
	"strconv"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/format"
)

// EditSession describes which record a modal is creating or editing.
// A zero ID means create mode. At most one session is active at a time;
// it exists only while a modal is open.
type EditSession struct {
	Resource Resource
	ID       int
}

// Editing reports whether the session targets an existing record.
func (e EditSession) Editing() bool {
	return e.ID != 0
}

// Title returns the modal heading: "Novo <Tipo>" or "Editar <Tipo>".
func (e EditSession) Title() string {
	if e.Editing() {
		return "Editar " + e.Resource.Label()
	}
	return "Novo " + e.Resource.Label()
}

// FormValues is a record flattened to form state: text inputs by field
// name, plus checkbox state for boolean fields.
type FormValues struct {
	Fields map[string]string
	Checks map[string]bool
}

// AgendamentoValues flattens an appointment for the edit form. The
// combined data_hora timestamp is split into separate date and 24-hour
// minute-precision time inputs.
func AgendamentoValues(a *api.Agendamento) FormValues {
	fields := map[string]string{
		"cliente_id":  strconv.Itoa(a.ClienteID),
		"servico_id":  strconv.Itoa(a.ServicoID),
		"status":      a.Status,
		"observacoes": a.Observacoes,
	}
	if date, hora, err := format.SplitDateTime(a.DataHora); err == nil {
		fields["data"] = date
		fields["hora"] = hora
	}
	return FormValues{Fields: fields, Checks: map[string]bool{}}
}

// ClienteValues flattens a client for the edit form.
func ClienteValues(c *api.Cliente) FormValues {
	return FormValues{
		Fields: map[string]string{
			"nome":     c.Nome,
			"telefone": c.Telefone,
			"email":    c.Email,
		},
		Checks: map[string]bool{},
	}
}

// ServicoValues flattens a service for the edit form; the ativo flag
// maps to checkbox state.
func ServicoValues(s *api.Servico) FormValues {
	return FormValues{
		Fields: map[string]string{
			"nome":             s.Nome,
			"valor":            strconv.FormatFloat(s.Valor, 'f', 2, 64),
			"duracao_estimada": strconv.Itoa(s.DuracaoEstimada),
			"descricao":        s.Descricao,
		},
		Checks: map[string]bool{"ativo": s.Ativo},
	}
}
