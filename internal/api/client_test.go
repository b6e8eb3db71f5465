package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c, srv
}

func TestLoginCarriesSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]any
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decoding login body: %v", err)
		}
		if creds["username"] != "joao" {
			t.Errorf("username = %v, want joao", creds["username"])
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login realizado com sucesso",
			"user":    map[string]any{"id": 1, "username": "joao"},
		})
	})
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Usuário não autenticado"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "joao"})
	})

	c, _ := newTestClient(t, mux)

	user, msg, err := c.Login(context.Background(), "joao", "senha")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user == nil || user.Username != "joao" {
		t.Errorf("Login user = %+v, want joao", user)
	}
	if msg != "Login realizado com sucesso" {
		t.Errorf("Login message = %q", msg)
	}

	// The jar must replay the session cookie.
	me, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed after login: %v", err)
	}
	if me.ID != 1 {
		t.Errorf("Me ID = %d, want 1", me.ID)
	}
}

func TestRejectionCarriesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
	})

	c, _ := newTestClient(t, mux)

	_, _, err := c.Login(context.Background(), "joao", "errada")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", reqErr.Status)
	}
	if reqErr.Message != "Credenciais inválidas" {
		t.Errorf("Message = %q, want server text verbatim", reqErr.Message)
	}
}

func TestRejectionWithoutBodyGetsGenericMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/clientes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c, _ := newTestClient(t, mux)

	_, err := c.CreateCliente(context.Background(), map[string]any{"nome": "João"})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Message != genericRejection {
		t.Errorf("Message = %q, want generic fallback", reqErr.Message)
	}
}

func TestTransportFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens anymore

	c, err := NewClient(url, time.Second)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = c.ListClientes(context.Background())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("error = %v, want ErrUnreachable", err)
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		t.Fatalf("transport failure must not be a *RequestError, got %v", reqErr)
	}
}

func TestListAgendamentosExpandsDateFilter(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/agendamentos", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]Agendamento{})
	})

	c, _ := newTestClient(t, mux)

	_, err := c.ListAgendamentos(context.Background(), AgendamentoFilter{
		Date:   "2024-03-01",
		Status: "confirmado",
	})
	if err != nil {
		t.Fatalf("ListAgendamentos failed: %v", err)
	}

	if got := gotQuery["data_inicio"]; len(got) != 1 || got[0] != "2024-03-01T00:00:00" {
		t.Errorf("data_inicio = %v, want 2024-03-01T00:00:00", got)
	}
	if got := gotQuery["data_fim"]; len(got) != 1 || got[0] != "2024-03-01T23:59:59" {
		t.Errorf("data_fim = %v, want 2024-03-01T23:59:59", got)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != "confirmado" {
		t.Errorf("status = %v, want confirmado", got)
	}
}

func TestListAgendamentosWithoutFiltersSendsNone(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/agendamentos", func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Query()) != 0 {
			t.Errorf("unexpected query params: %v", r.URL.Query())
		}
		json.NewEncoder(w).Encode([]Agendamento{})
	})

	c, _ := newTestClient(t, mux)
	if _, err := c.ListAgendamentos(context.Background(), AgendamentoFilter{}); err != nil {
		t.Fatalf("ListAgendamentos failed: %v", err)
	}
}

func TestAgendamentoDecodesDenormalizedLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/agendamentos/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":         7,
			"cliente_id": 2,
			"servico_id": 3,
			"data_hora":  "2024-03-01T14:30:00",
			"status":     "confirmado",
			"cliente":    map[string]any{"id": 2, "nome": "João"},
			"servico":    nil, // service was deleted
		})
	})

	c, _ := newTestClient(t, mux)

	ag, err := c.GetAgendamento(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetAgendamento failed: %v", err)
	}
	if ag.Cliente == nil || ag.Cliente.Nome != "João" {
		t.Errorf("Cliente = %+v, want João", ag.Cliente)
	}
	if ag.Servico != nil {
		t.Errorf("Servico = %+v, want nil for missing link", ag.Servico)
	}
}

func TestUpdateServicoSendsOnlyGivenFields(t *testing.T) {
	var gotBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/servicos/4", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Serviço atualizado com sucesso"})
	})

	c, _ := newTestClient(t, mux)

	msg, err := c.UpdateServico(context.Background(), 4, map[string]any{"ativo": false})
	if err != nil {
		t.Fatalf("UpdateServico failed: %v", err)
	}
	if msg != "Serviço atualizado com sucesso" {
		t.Errorf("message = %q", msg)
	}
	if len(gotBody) != 1 {
		t.Errorf("payload = %v, want only the ativo field", gotBody)
	}
	if v, ok := gotBody["ativo"].(bool); !ok || v {
		t.Errorf("ativo = %v, want false", gotBody["ativo"])
	}
}

func TestSearchClientesEncodesQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/clientes/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "joão silva" {
			t.Errorf("q = %q, want %q", got, "joão silva")
		}
		json.NewEncoder(w).Encode([]Cliente{{ID: 1, Nome: "João Silva"}})
	})

	c, _ := newTestClient(t, mux)

	items, err := c.SearchClientes(context.Background(), "joão silva")
	if err != nil {
		t.Fatalf("SearchClientes failed: %v", err)
	}
	if len(items) != 1 || items[0].Nome != "João Silva" {
		t.Errorf("items = %+v", items)
	}
}
