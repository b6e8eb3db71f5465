package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/config"
	"github.com/navalha-dev/navalha/internal/tui"
	"github.com/navalha-dev/navalha/internal/tui/views"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	client, err := api.NewClient("http://127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	a := New(config.DefaultConfig(), client, nil)
	a.probing = false
	return a
}

func signIn(a *App) {
	a.Update(tui.AuthProbeMsg{User: &api.User{ID: 1, Username: "dono"}})
}

func TestProbeFailureLandsOnLogin(t *testing.T) {
	a := newTestApp(t)
	a.Update(tui.AuthProbeMsg{Err: api.ErrUnreachable})
	if a.model.Screen != tui.ScreenLogin {
		t.Errorf("screen = %v, want login", a.model.Screen)
	}
}

func TestProbeSuccessEntersDashboard(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	if a.model.Screen != tui.ScreenDashboard {
		t.Fatalf("screen = %v, want dashboard", a.model.Screen)
	}
	if a.model.Section != tui.SectionResumo {
		t.Errorf("section = %v, want resumo", a.model.Section)
	}
	if a.model.User == nil || a.model.User.Username != "dono" {
		t.Errorf("user not installed: %+v", a.model.User)
	}
}

func TestLogoutClearsSessionEvenOnFailure(t *testing.T) {
	a := newTestApp(t)
	signIn(a)

	a.Update(tui.LogoutMsg{Err: api.ErrUnreachable})
	if a.model.Screen != tui.ScreenLogin {
		t.Errorf("screen = %v, want login after failed logout", a.model.Screen)
	}
	if a.model.User != nil {
		t.Errorf("user still set after logout: %+v", a.model.User)
	}
	if !a.model.Notice.Visible() || a.model.Notice.Kind != tui.NoticeError {
		t.Errorf("failed logout did not show an error notice: %+v", a.model.Notice)
	}
}

func TestStaleListResponseIsDropped(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.activateSection(tui.SectionAgendamentos)

	fresh := []api.Agendamento{{ID: 1, DataHora: "2024-03-01T10:00:00"}}
	a.Update(tui.AgendamentosMsg{Seq: a.agendamentosSeq, Items: fresh})

	stale := []api.Agendamento{{ID: 99}}
	a.Update(tui.AgendamentosMsg{Seq: a.agendamentosSeq - 1, Items: stale})

	if f, found := selectedAgendamento(a); !found || f.ID != 1 {
		t.Errorf("stale response replaced the fresh list: %+v", f)
	}
}

func selectedAgendamento(a *App) (api.Agendamento, bool) {
	items := agendamentoItems(a)
	if len(items) == 0 {
		return api.Agendamento{}, false
	}
	return items[0], true
}

func agendamentoItems(a *App) []api.Agendamento {
	// White-box peek at the view's backing list.
	return a.agendamentosView.Items()
}

func TestDeleteDeclineSendsNothing(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.model.Section = tui.SectionClientes

	a.Update(views.ConfirmDeleteMsg{Resource: tui.ResourceCliente, ID: 7})
	if a.confirm == nil {
		t.Fatal("confirmation prompt not armed")
	}

	_, cmd := a.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if cmd != nil {
		t.Error("declining the prompt issued a command")
	}
	if a.confirm != nil {
		t.Error("prompt still armed after decline")
	}
}

func TestDeleteConfirmIssuesCommand(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.Update(views.ConfirmDeleteMsg{Resource: tui.ResourceServico, ID: 3})

	_, cmd := a.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if cmd == nil {
		t.Error("confirming the prompt issued no command")
	}
}

func TestStaleSearchTimerIsIgnored(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.model.Section = tui.SectionClientes

	a.Update(views.SearchInputMsg{Query: "j"})
	a.Update(views.SearchInputMsg{Query: "jo"})
	a.Update(views.SearchInputMsg{Query: "joa"})

	// The first two timers are superseded.
	if cmd, _ := a.handleRequestMsg(tui.SearchTimerMsg{Seq: 1, Query: "j"}); cmd != nil {
		t.Error("stale timer issued a request")
	}
	if cmd, _ := a.handleRequestMsg(tui.SearchTimerMsg{Seq: 3, Query: "joa"}); cmd == nil {
		t.Error("current timer issued no request")
	}
}

func TestListFailureKeepsPriorItems(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.activateSection(tui.SectionAgendamentos)

	shown := []api.Agendamento{{ID: 1, DataHora: "2024-03-01T10:00:00"}}
	a.Update(tui.AgendamentosMsg{Seq: a.agendamentosSeq, Items: shown})

	a.Update(tui.AgendamentosMsg{Seq: a.agendamentosSeq, Err: api.ErrUnreachable})
	if items := a.agendamentosView.Items(); len(items) != 1 || items[0].ID != 1 {
		t.Errorf("failed reload dropped the displayed list: %+v", items)
	}
	if !a.model.Notice.Visible() || a.model.Notice.Kind != tui.NoticeError {
		t.Error("failed reload did not show an error notice")
	}
}

func TestSearchRoutesByQueryLength(t *testing.T) {
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	client, err := api.NewClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	a := New(config.DefaultConfig(), client, nil)
	a.probing = false
	signIn(a)
	a.model.Section = tui.SectionClientes

	// A settled one-character query loads the plain list.
	a.Update(views.SearchInputMsg{Query: "a"})
	cmd, _ := a.handleRequestMsg(tui.SearchTimerMsg{Seq: 1, Query: "a"})
	if cmd == nil {
		t.Fatal("settled short query issued no request")
	}
	cmd()
	if hits["/api/clientes"] != 1 {
		t.Errorf("/api/clientes hits = %d, want 1", hits["/api/clientes"])
	}
	if hits["/api/clientes/search"] != 0 {
		t.Errorf("short query reached /api/clientes/search %d times", hits["/api/clientes/search"])
	}

	// Two characters and up go through search.
	a.Update(views.SearchInputMsg{Query: "ab"})
	cmd, _ = a.handleRequestMsg(tui.SearchTimerMsg{Seq: 2, Query: "ab"})
	if cmd == nil {
		t.Fatal("settled search query issued no request")
	}
	cmd()
	if hits["/api/clientes/search"] != 1 {
		t.Errorf("/api/clientes/search hits = %d, want 1", hits["/api/clientes/search"])
	}
}

func TestSectionSwitchCancelsPendingSearch(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.model.Section = tui.SectionClientes

	a.Update(views.SearchInputMsg{Query: "jo"})

	// Leaving and re-entering the section clears the search box, so
	// the timer armed before the switch must no longer fire.
	a.activateSection(tui.SectionServicos)
	a.activateSection(tui.SectionClientes)

	if cmd, _ := a.handleRequestMsg(tui.SearchTimerMsg{Seq: 1, Query: "jo"}); cmd != nil {
		t.Error("timer from before the section switch issued a request")
	}
}

func TestMutationFailureKeepsModalOpen(t *testing.T) {
	a := newTestApp(t)
	signIn(a)
	a.model.Section = tui.SectionClientes

	a.Update(views.OpenEditorMsg{Session: tui.EditSession{Resource: tui.ResourceCliente}})
	if a.modal == nil {
		t.Fatal("modal not opened")
	}

	a.Update(tui.MutationMsg{Resource: tui.ResourceCliente, Err: errors.New("nome em uso")})
	if a.modal == nil {
		t.Error("failed submit closed the modal")
	}

	a.Update(tui.MutationMsg{Resource: tui.ResourceCliente, Message: "Cliente criado"})
	if a.modal != nil {
		t.Error("successful submit left the modal open")
	}
}

func TestSummaryWaitsForBothResponses(t *testing.T) {
	a := newTestApp(t)
	signIn(a)

	servico := &api.Servico{ID: 1, Valor: 50}
	hoje := []api.Agendamento{
		{ID: 1, Status: "concluido", Servico: servico},
		{ID: 2, Status: "pendente", Servico: servico},
	}

	a.Update(tui.HojeMsg{Seq: a.hojeSeq, Items: hoje})
	if a.resumoClientesReady {
		t.Fatal("join finished with a single response")
	}

	_, cmd := a.Update(tui.ResumoClientesMsg{Seq: a.resumoClientesSeq, Items: []api.Cliente{{ID: 1}, {ID: 2}}})
	if cmd == nil {
		t.Error("completed summary did not fetch upcoming appointments")
	}

	s := tui.ComputeSummary(hoje, []api.Cliente{{ID: 1}, {ID: 2}})
	if s.ReceitaHoje != 50 {
		t.Errorf("receita = %v, want 50 (only concluded appointments count)", s.ReceitaHoje)
	}
	if s.AgendamentosHoje != 2 || s.TotalClientes != 2 {
		t.Errorf("summary = %+v", s)
	}
}
