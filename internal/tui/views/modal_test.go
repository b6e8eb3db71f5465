package views

import (
	"testing"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/tui"
)

func TestAgendamentoPayloadRecombinesDataHora(t *testing.T) {
	m := NewModalModel(tui.EditSession{Resource: tui.ResourceAgendamento}, 80)
	m.SetOptions(
		[]api.Cliente{{ID: 4, Nome: "João Silva"}},
		[]api.Servico{{ID: 9, Nome: "Corte", Valor: 45}},
	)
	m.Populate(tui.FormValues{Fields: map[string]string{
		"cliente_id":  "4",
		"servico_id":  "9",
		"data":        "2024-03-01",
		"hora":        "14:30",
		"status":      "confirmado",
		"observacoes": "",
	}})

	payload, err := m.Payload()
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}

	if got := payload["data_hora"]; got != "2024-03-01T14:30:00" {
		t.Errorf("data_hora = %v, want 2024-03-01T14:30:00", got)
	}
	if _, ok := payload["data"]; ok {
		t.Error("split data field leaked into payload")
	}
	if _, ok := payload["hora"]; ok {
		t.Error("split hora field leaked into payload")
	}
	if got := payload["cliente_id"]; got != 4 {
		t.Errorf("cliente_id = %v (%T), want int 4", got, got)
	}
	if got := payload["servico_id"]; got != 9 {
		t.Errorf("servico_id = %v (%T), want int 9", got, got)
	}
	if got := payload["status"]; got != "confirmado" {
		t.Errorf("status = %v", got)
	}
}

func TestAgendamentoPayloadRequiresDateAndTime(t *testing.T) {
	m := NewModalModel(tui.EditSession{Resource: tui.ResourceAgendamento}, 80)
	m.SetOptions(
		[]api.Cliente{{ID: 1, Nome: "Maria"}},
		[]api.Servico{{ID: 2, Nome: "Barba"}},
	)
	if _, err := m.Payload(); err == nil {
		t.Error("empty date and time produced a payload")
	}
}

func TestServicoPayloadCoercesTypes(t *testing.T) {
	m := NewModalModel(tui.EditSession{Resource: tui.ResourceServico}, 80)
	m.Populate(tui.FormValues{
		Fields: map[string]string{
			"nome":             "Corte degradê",
			"valor":            "45.50",
			"duracao_estimada": "40",
			"descricao":        "",
		},
		Checks: map[string]bool{"ativo": false},
	})

	payload, err := m.Payload()
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}
	if got := payload["valor"]; got != 45.50 {
		t.Errorf("valor = %v (%T), want float64 45.50", got, got)
	}
	if got := payload["duracao_estimada"]; got != 40 {
		t.Errorf("duracao_estimada = %v (%T), want int 40", got, got)
	}
	if got := payload["ativo"]; got != false {
		t.Errorf("ativo = %v, want false", got)
	}
}

func TestNewServicoDefaultsToAtivo(t *testing.T) {
	m := NewModalModel(tui.EditSession{Resource: tui.ResourceServico}, 80)
	m.setFieldValue("nome", "Corte")
	m.setFieldValue("valor", "30")
	m.setFieldValue("duracao_estimada", "30")

	payload, err := m.Payload()
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}
	if got := payload["ativo"]; got != true {
		t.Errorf("ativo = %v, want true for a new service", got)
	}
}

func TestClientePayloadRequiresNome(t *testing.T) {
	m := NewModalModel(tui.EditSession{Resource: tui.ResourceCliente}, 80)
	if _, err := m.Payload(); err == nil {
		t.Error("empty nome produced a payload")
	}

	m.Populate(tui.FormValues{Fields: map[string]string{
		"nome":     "João",
		"telefone": "11 91234-5678",
		"email":    "",
	}})
	payload, err := m.Payload()
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}
	if got := payload["nome"]; got != "João" {
		t.Errorf("nome = %v", got)
	}
}

func TestModalLoadingUntilRecordAndOptions(t *testing.T) {
	m := NewModalModel(tui.EditSession{Resource: tui.ResourceAgendamento, ID: 5}, 80)
	if !m.loading {
		t.Fatal("edit modal not loading before record arrives")
	}

	m.Populate(tui.FormValues{Fields: map[string]string{"data": "2024-03-01", "hora": "10:00"}})
	if !m.loading {
		t.Error("modal left loading state before options arrived")
	}

	m.SetOptions([]api.Cliente{{ID: 1, Nome: "Maria"}}, []api.Servico{{ID: 2, Nome: "Barba"}})
	if m.loading {
		t.Error("modal still loading with record and options installed")
	}
}
