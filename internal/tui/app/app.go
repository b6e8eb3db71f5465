// Package app provides the main TUI application that wires all views together.
package app

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/config"
	"github.com/navalha-dev/navalha/internal/log"
	"github.com/navalha-dev/navalha/internal/tui"
	"github.com/navalha-dev/navalha/internal/tui/commands"
	"github.com/navalha-dev/navalha/internal/tui/views"
)

// pendingDelete is the state of the remove-confirmation prompt. No
// request leaves the client until the user confirms.
type pendingDelete struct {
	resource tui.Resource
	id       int
}

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	// View models
	loginView        views.LoginModel
	resumoView       views.ResumoModel
	agendamentosView views.AgendamentosModel
	clientesView     views.ClientesModel
	servicosView     views.ServicosModel

	// Overlays: at most one edit modal, at most one delete prompt.
	modal   *views.ModalModel
	confirm *pendingDelete

	// Sequence counters for the stale-response guard. Each list fetch
	// is issued with the counter's current value; a result carrying an
	// older value is dropped.
	agendamentosSeq   int
	clientesSeq       int
	servicosSeq       int
	hojeSeq           int
	resumoClientesSeq int
	proximosSeq       int

	// Resumo join state: metrics derive only after both responses.
	hoje                []api.Agendamento
	hojeReady           bool
	resumoClientes      []api.Cliente
	resumoClientesReady bool

	search  tui.Debouncer
	probing bool
}

// New creates the application in its startup state.
func New(cfg *config.Config, client *api.Client, logger *log.Logger) *App {
	model := tui.NewModel(cfg, client, logger)
	return &App{
		model:            model,
		loginView:        views.NewLoginModel(model.Width, model.Height),
		resumoView:       views.NewResumoModel(model.Width),
		agendamentosView: views.NewAgendamentosModel(model.Width, model.Height),
		clientesView:     views.NewClientesModel(model.Width, model.Height),
		servicosView:     views.NewServicosModel(model.Width, model.Height),
		probing:          true,
	}
}

// Init probes for an existing session before showing any screen.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		commands.ProbeCmd(a.model.API),
		a.model.Spinner.Tick,
		a.loginView.Init(),
	)
}

// errorText maps a gateway failure to the user-facing notification.
func errorText(err error) string {
	if errors.Is(err, api.ErrUnreachable) {
		return "Erro de conexão"
	}
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}

// confirmText phrases the delete prompt per resource. Appointments are
// cancelled, the other records are removed.
func confirmText(r tui.Resource) string {
	if r == tui.ResourceAgendamento {
		return "Tem certeza que deseja cancelar este agendamento? (s/n)"
	}
	return "Tem certeza que deseja excluir este registro? (s/n)"
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.loginView, cmd = a.loginView.Update(msg)
		cmds = append(cmds, cmd)
		a.resumoView, cmd = a.resumoView.Update(msg)
		cmds = append(cmds, cmd)
		a.agendamentosView, cmd = a.agendamentosView.Update(msg)
		cmds = append(cmds, cmd)
		a.clientesView, cmd = a.clientesView.Update(msg)
		cmds = append(cmds, cmd)
		a.servicosView, cmd = a.servicosView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !a.probing {
			return a, nil
		}
		var cmd tea.Cmd
		a.model.Spinner, cmd = a.model.Spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tui.NoticeExpiredMsg:
		a.model.Notice.Expire(msg.Gen)
		return a, nil
	}

	if cmd, handled := a.handleSessionMsg(msg); handled {
		return a, cmd
	}
	if cmd, handled := a.handleListMsg(msg); handled {
		return a, cmd
	}
	if cmd, handled := a.handleEditMsg(msg); handled {
		return a, cmd
	}
	if cmd, handled := a.handleRequestMsg(msg); handled {
		return a, cmd
	}

	return a.routeToActiveView(msg)
}

// handleKey deals with global keys and overlay precedence, then routes
// to the active view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == tui.KeyCtrlC {
		return a, tea.Quit
	}

	// The delete prompt swallows all keys. Only 's' (sim) proceeds;
	// everything else dismisses with no request sent.
	if a.confirm != nil {
		pending := *a.confirm
		a.confirm = nil
		if msg.String() == "s" || msg.String() == "y" {
			return a, commands.DeleteCmd(a.model.API, pending.resource, pending.id)
		}
		return a, nil
	}

	if a.modal != nil {
		updated, cmd := a.modal.Update(msg)
		a.modal = &updated
		return a, cmd
	}

	if a.model.Screen == tui.ScreenDashboard {
		switch msg.String() {
		case tui.KeyTab:
			return a, a.activateSection(a.model.Section.Next())
		case "ctrl+l":
			return a, commands.LogoutCmd(a.model.API)
		}
	}

	return a.routeToActiveView(msg)
}

// handleSessionMsg processes authentication results.
func (a *App) handleSessionMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tui.AuthProbeMsg:
		a.probing = false
		if msg.Err != nil || msg.User == nil {
			a.model.Screen = tui.ScreenLogin
			return nil, true
		}
		return a.enterDashboard(msg.User), true

	case tui.LoginResultMsg:
		a.loginView.SetBusy(false)
		if msg.Err != nil {
			a.logFailure("", msg.Err)
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.logEvent(log.LogEvent{Event: log.EventLogin, User: msg.User.Username})
		text := msg.Message
		if text == "" {
			text = "Login realizado com sucesso"
		}
		return tea.Batch(a.model.Notice.Show(text, tui.NoticeSuccess), a.enterDashboard(msg.User)), true

	case tui.RegisterResultMsg:
		a.loginView.SetBusy(false)
		if msg.Err != nil {
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.logEvent(log.LogEvent{Event: log.EventRegister, Message: msg.Message})
		a.loginView.Reset()
		text := msg.Message
		if text == "" {
			text = "Conta criada com sucesso"
		}
		return a.model.Notice.Show(text, tui.NoticeSuccess), true

	case tui.LogoutMsg:
		// The session ends locally whatever the server said.
		user := ""
		if a.model.User != nil {
			user = a.model.User.Username
		}
		a.logEvent(log.LogEvent{Event: log.EventLogout, User: user})
		a.model.User = nil
		a.model.Screen = tui.ScreenLogin
		a.modal = nil
		a.confirm = nil
		a.loginView = views.NewLoginModel(a.model.Width, a.model.Height)
		if msg.Err != nil {
			return a.model.Notice.Show("Erro ao fazer logout", tui.NoticeError), true
		}
		text := msg.Message
		if text == "" {
			text = "Sessão encerrada"
		}
		return a.model.Notice.Show(text, tui.NoticeSuccess), true
	}
	return nil, false
}

// handleListMsg processes list results, applying the stale-response
// guard before any state changes.
func (a *App) handleListMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tui.AgendamentosMsg:
		if msg.Seq != a.agendamentosSeq {
			return nil, true
		}
		if msg.Err != nil {
			a.agendamentosView.SetFailure()
			a.logFailure("agendamentos", msg.Err)
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.agendamentosView.SetItems(msg.Items)
		a.logEvent(log.LogEvent{Event: log.EventSectionLoaded, Section: "agendamentos", Count: len(msg.Items)})
		return nil, true

	case tui.ClientesMsg:
		if msg.Seq != a.clientesSeq {
			return nil, true
		}
		if msg.Err != nil {
			a.clientesView.SetFailure()
			a.logFailure("clientes", msg.Err)
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.clientesView.SetItems(msg.Items)
		a.logEvent(log.LogEvent{Event: log.EventSectionLoaded, Section: "clientes", Count: len(msg.Items)})
		return nil, true

	case tui.ServicosMsg:
		if msg.Seq != a.servicosSeq {
			return nil, true
		}
		if msg.Err != nil {
			a.servicosView.SetFailure()
			a.logFailure("servicos", msg.Err)
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.servicosView.SetItems(msg.Items)
		a.logEvent(log.LogEvent{Event: log.EventSectionLoaded, Section: "servicos", Count: len(msg.Items)})
		return nil, true

	case tui.HojeMsg:
		if msg.Seq != a.hojeSeq {
			return nil, true
		}
		a.hoje = msg.Items
		a.hojeReady = true
		var notice tea.Cmd
		if msg.Err != nil {
			a.logFailure("resumo", msg.Err)
			notice = a.model.Notice.Show(errorText(msg.Err), tui.NoticeError)
		}
		return tea.Batch(notice, a.maybeFinishSummary()), true

	case tui.ResumoClientesMsg:
		if msg.Seq != a.resumoClientesSeq {
			return nil, true
		}
		a.resumoClientes = msg.Items
		a.resumoClientesReady = true
		var notice tea.Cmd
		if msg.Err != nil {
			a.logFailure("resumo", msg.Err)
			notice = a.model.Notice.Show(errorText(msg.Err), tui.NoticeError)
		}
		return tea.Batch(notice, a.maybeFinishSummary()), true

	case tui.ProximosMsg:
		if msg.Seq != a.proximosSeq {
			return nil, true
		}
		a.resumoView.SetProximos(msg.Items, msg.Err != nil)
		if msg.Err != nil {
			a.logFailure("resumo", msg.Err)
		}
		return nil, true
	}
	return nil, false
}

// maybeFinishSummary derives the resumo metrics once both fetches have
// resolved, then kicks off the upcoming-appointments fetch.
func (a *App) maybeFinishSummary() tea.Cmd {
	if !a.hojeReady || !a.resumoClientesReady {
		return nil
	}
	a.resumoView.SetSummary(tui.ComputeSummary(a.hoje, a.resumoClientes))
	a.logEvent(log.LogEvent{Event: log.EventSectionLoaded, Section: "resumo"})
	a.proximosSeq++
	return commands.LoadProximosCmd(a.model.API, a.proximosSeq)
}

// handleEditMsg processes edit-session results.
func (a *App) handleEditMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tui.RecordValuesMsg:
		if a.modal == nil || a.modal.Session() != msg.Session {
			return nil, true
		}
		if msg.Err != nil {
			a.modal = nil
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.modal.Populate(msg.Values)
		return nil, true

	case tui.OptionsMsg:
		if a.modal == nil {
			return nil, true
		}
		if msg.Err != nil {
			a.modal = nil
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.modal.SetOptions(msg.Clientes, msg.Servicos)
		return nil, true

	case tui.MutationMsg:
		if msg.Err != nil {
			// A failed submit leaves the modal open for correction.
			a.logFailure(msg.Resource.Name(), msg.Err)
			return a.model.Notice.Show(errorText(msg.Err), tui.NoticeError), true
		}
		a.modal = nil
		a.logEvent(log.LogEvent{Event: log.EventMutation, Resource: msg.Resource.Name(), Message: msg.Message})
		text := msg.Message
		if text == "" {
			text = "Operação realizada com sucesso"
		}
		reload := a.reloadResource(msg.Resource)
		return tea.Batch(a.model.Notice.Show(text, tui.NoticeSuccess), reload), true
	}
	return nil, false
}

// handleRequestMsg processes requests emitted by the views.
func (a *App) handleRequestMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case views.LoginSubmitMsg:
		a.loginView.SetBusy(true)
		return commands.LoginCmd(a.model.API, msg.Username, msg.Password), true

	case views.RegisterSubmitMsg:
		a.loginView.SetBusy(true)
		return commands.RegisterCmd(a.model.API, msg.Username, msg.Email, msg.Password), true

	case views.OpenEditorMsg:
		modal := views.NewModalModel(msg.Session, a.model.Width)
		a.modal = &modal
		cmds := []tea.Cmd{a.modal.Init()}
		if msg.Session.Editing() {
			cmds = append(cmds, commands.FetchRecordCmd(a.model.API, msg.Session))
		}
		if msg.Session.Resource == tui.ResourceAgendamento {
			cmds = append(cmds, commands.LoadOptionsCmd(a.model.API))
		}
		return tea.Batch(cmds...), true

	case views.ConfirmDeleteMsg:
		a.confirm = &pendingDelete{resource: msg.Resource, id: msg.ID}
		return nil, true

	case views.ToggleServicoMsg:
		return commands.ToggleServicoCmd(a.model.API, msg.ID, msg.Ativo), true

	case views.FilterChangedMsg:
		a.agendamentosSeq++
		a.agendamentosView.SetLoading()
		return commands.LoadAgendamentosCmd(a.model.API, a.agendamentosSeq, msg.Filter), true

	case views.SearchInputMsg:
		return a.search.Trigger(tui.SearchDebounce, func(seq int) tea.Msg {
			return tui.SearchTimerMsg{Seq: seq, Query: msg.Query}
		}), true

	case tui.SearchTimerMsg:
		if !a.search.Current(msg.Seq) {
			return nil, true
		}
		a.clientesSeq++
		a.clientesView.SetLoading()
		// Terms shorter than two characters fall back to the plain list.
		if len([]rune(msg.Query)) >= 2 {
			return commands.SearchClientesCmd(a.model.API, a.clientesSeq, msg.Query), true
		}
		return commands.LoadClientesCmd(a.model.API, a.clientesSeq), true

	case views.SubmitFormMsg:
		if a.modal == nil {
			return nil, true
		}
		return commands.SubmitCmd(a.model.API, a.modal.Session(), msg.Payload), true

	case views.FormInvalidMsg:
		return a.model.Notice.Show(msg.Reason, tui.NoticeError), true

	case views.CancelFormMsg:
		a.modal = nil
		return nil, true
	}
	return nil, false
}

// routeToActiveView forwards a message to the view that owns the
// current screen and section.
func (a *App) routeToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.model.Screen == tui.ScreenLogin {
		a.loginView, cmd = a.loginView.Update(msg)
		return a, cmd
	}

	switch a.model.Section {
	case tui.SectionResumo:
		a.resumoView, cmd = a.resumoView.Update(msg)
	case tui.SectionAgendamentos:
		a.agendamentosView, cmd = a.agendamentosView.Update(msg)
	case tui.SectionClientes:
		a.clientesView, cmd = a.clientesView.Update(msg)
	case tui.SectionServicos:
		a.servicosView, cmd = a.servicosView.Update(msg)
	}
	return a, cmd
}

// enterDashboard installs the session and loads the summary section.
func (a *App) enterDashboard(user *api.User) tea.Cmd {
	a.model.User = user
	a.model.Screen = tui.ScreenDashboard
	return a.activateSection(tui.SectionResumo)
}

// activateSection switches the dashboard section and always reloads its
// data; nothing is served from a previous visit.
func (a *App) activateSection(s tui.Section) tea.Cmd {
	a.model.Section = s

	switch s {
	case tui.SectionResumo:
		a.resumoView.Reset()
		a.hojeReady = false
		a.resumoClientesReady = false
		a.hojeSeq++
		a.resumoClientesSeq++
		return tea.Batch(
			commands.LoadHojeCmd(a.model.API, a.hojeSeq),
			commands.LoadResumoClientesCmd(a.model.API, a.resumoClientesSeq),
		)

	case tui.SectionAgendamentos:
		a.agendamentosSeq++
		a.agendamentosView.SetLoading()
		return commands.LoadAgendamentosCmd(a.model.API, a.agendamentosSeq, a.agendamentosView.Filter())

	case tui.SectionClientes:
		a.clientesSeq++
		a.clientesView.SetLoading()
		a.clientesView.ResetSearch()
		// A timer armed before the switch must not fire into the
		// freshly cleared search box.
		a.search.Cancel()
		return commands.LoadClientesCmd(a.model.API, a.clientesSeq)

	default:
		a.servicosSeq++
		a.servicosView.SetLoading()
		return commands.LoadServicosCmd(a.model.API, a.servicosSeq)
	}
}

// reloadResource refreshes the list that shows the mutated resource,
// plus the resumo metrics when that section is the active one.
func (a *App) reloadResource(r tui.Resource) tea.Cmd {
	if a.model.Section == tui.SectionResumo {
		return a.activateSection(tui.SectionResumo)
	}
	switch r {
	case tui.ResourceAgendamento:
		a.agendamentosSeq++
		a.agendamentosView.SetLoading()
		return commands.LoadAgendamentosCmd(a.model.API, a.agendamentosSeq, a.agendamentosView.Filter())
	case tui.ResourceCliente:
		a.clientesSeq++
		a.clientesView.SetLoading()
		return commands.LoadClientesCmd(a.model.API, a.clientesSeq)
	default:
		a.servicosSeq++
		a.servicosView.SetLoading()
		return commands.LoadServicosCmd(a.model.API, a.servicosSeq)
	}
}

func (a *App) logEvent(event log.LogEvent) {
	if a.model.Log == nil {
		return
	}
	if event.User == "" && a.model.User != nil {
		event.User = a.model.User.Username
	}
	_ = a.model.Log.Append(event)
}

func (a *App) logFailure(section string, err error) {
	a.logEvent(log.LogEvent{Event: log.EventRequestFailed, Section: section, Error: err.Error()})
}

// View renders the current application state.
func (a *App) View() string {
	if a.probing {
		content := a.model.Spinner.View() + " Conectando ao servidor..."
		return lipgloss.Place(a.model.Width, a.model.Height, lipgloss.Center, lipgloss.Center, content)
	}

	if a.model.Screen == tui.ScreenLogin {
		return a.overlayNotice(a.loginView.View())
	}
	return a.overlayNotice(a.dashboardView())
}

// dashboardView composes the header, the active section and overlays.
func (a *App) dashboardView() string {
	header := a.renderHeader()

	var content string
	switch {
	case a.confirm != nil:
		content = tui.BoxStyle.Render(tui.WarningStyle.Render(confirmText(a.confirm.resource)))
	case a.modal != nil:
		content = a.modal.View()
	default:
		switch a.model.Section {
		case tui.SectionResumo:
			content = a.resumoView.View()
		case tui.SectionAgendamentos:
			content = a.agendamentosView.View()
		case tui.SectionClientes:
			content = a.clientesView.View()
		case tui.SectionServicos:
			content = a.servicosView.View()
		}
	}

	return header + "\n\n" + content
}

// renderHeader draws the title bar with the section tabs.
func (a *App) renderHeader() string {
	tabs := make([]string, 0, 4)
	for s := tui.SectionResumo; s <= tui.SectionServicos; s++ {
		if s == a.model.Section {
			tabs = append(tabs, tui.ActiveTabStyle.Render(s.Title()))
		} else {
			tabs = append(tabs, tui.InactiveTabStyle.Render(s.Title()))
		}
	}

	user := ""
	if a.model.User != nil {
		user = tui.DimStyle.Render("  " + a.model.User.Username + "  ctrl+l: sair")
	}

	return tui.TitleStyle.Render("Navalha") + user + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// overlayNotice appends the notification line when one is visible.
func (a *App) overlayNotice(content string) string {
	if !a.model.Notice.Visible() {
		return content
	}
	return a.model.Notice.View() + "\n" + content
}
