package tui

import (
	"testing"

	"github.com/navalha-dev/navalha/internal/api"
)

func TestEditSessionTitle(t *testing.T) {
	tests := []struct {
		session EditSession
		want    string
	}{
		{EditSession{Resource: ResourceAgendamento}, "Novo Agendamento"},
		{EditSession{Resource: ResourceAgendamento, ID: 7}, "Editar Agendamento"},
		{EditSession{Resource: ResourceCliente}, "Novo Cliente"},
		{EditSession{Resource: ResourceServico, ID: 3}, "Editar Serviço"},
	}
	for _, tt := range tests {
		if got := tt.session.Title(); got != tt.want {
			t.Errorf("Title() = %q, want %q", got, tt.want)
		}
	}
}

func TestAgendamentoValuesSplitsDataHora(t *testing.T) {
	a := &api.Agendamento{
		ID:          12,
		ClienteID:   4,
		ServicoID:   9,
		DataHora:    "2024-03-01T14:30:00",
		Status:      "confirmado",
		Observacoes: "trazer referência",
	}
	v := AgendamentoValues(a)

	want := map[string]string{
		"cliente_id":  "4",
		"servico_id":  "9",
		"data":        "2024-03-01",
		"hora":        "14:30",
		"status":      "confirmado",
		"observacoes": "trazer referência",
	}
	for field, w := range want {
		if got := v.Fields[field]; got != w {
			t.Errorf("Fields[%q] = %q, want %q", field, got, w)
		}
	}
	if _, ok := v.Fields["data_hora"]; ok {
		t.Error("combined data_hora field leaked into form values")
	}
}

func TestAgendamentoValuesUnparseableTimestamp(t *testing.T) {
	v := AgendamentoValues(&api.Agendamento{DataHora: "amanhã de manhã"})
	if _, ok := v.Fields["data"]; ok {
		t.Error("unparseable timestamp produced a data field")
	}
	if _, ok := v.Fields["hora"]; ok {
		t.Error("unparseable timestamp produced a hora field")
	}
}

func TestServicoValuesAtivoIsCheckboxState(t *testing.T) {
	v := ServicoValues(&api.Servico{
		Nome:            "Corte degradê",
		Valor:           45,
		DuracaoEstimada: 40,
		Ativo:           true,
	})
	if !v.Checks["ativo"] {
		t.Error("ativo flag not mapped to checkbox state")
	}
	if _, ok := v.Fields["ativo"]; ok {
		t.Error("ativo leaked into text fields")
	}
	if got := v.Fields["valor"]; got != "45.00" {
		t.Errorf("valor = %q, want %q", got, "45.00")
	}
	if got := v.Fields["duracao_estimada"]; got != "40" {
		t.Errorf("duracao_estimada = %q, want %q", got, "40")
	}
}

func TestClienteValues(t *testing.T) {
	v := ClienteValues(&api.Cliente{Nome: "João Silva", Telefone: "11 98765-4321", Email: "joao@example.com"})
	if got := v.Fields["nome"]; got != "João Silva" {
		t.Errorf("nome = %q", got)
	}
	if got := v.Fields["telefone"]; got != "11 98765-4321" {
		t.Errorf("telefone = %q", got)
	}
}
